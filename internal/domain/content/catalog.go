package content

func f(v float64) *float64 { return &v }

// catalogs holds the compiled-in marketing content keyed by locale.
var catalogs = map[string]*Catalog{
	"en": {
		Locale: "en",
		Plans: []Plan{
			{
				Key:          "starter",
				Name:         "Starter",
				Description:  "For small labs getting started",
				PriceMonthly: f(49),
				PriceYearly:  f(490),
				Currency:     "USD",
				Features: []string{
					"Up to 500 patients",
					"Basic test catalog",
					"Printable reports",
					"Email support",
				},
				CTA: "Start free trial",
			},
			{
				Key:          "professional",
				Name:         "Professional",
				Description:  "For growing laboratories",
				PriceMonthly: f(149),
				PriceYearly:  f(1490),
				Currency:     "USD",
				Popular:      true,
				Features: []string{
					"Unlimited patients",
					"Full test catalog with custom panels",
					"Branded PDF reports",
					"Billing and invoicing",
					"Inventory tracking",
					"Priority support",
				},
				CTA: "Start free trial",
			},
			{
				Key:         "enterprise",
				Name:        "Enterprise",
				Description: "For hospital networks and chains",
				Currency:    "USD",
				Features: []string{
					"Everything in Professional",
					"Multi-branch management",
					"Instrument integrations",
					"Dedicated account manager",
					"Custom SLAs",
				},
				CTA: "Contact sales",
			},
		},
		Features: []Feature{
			{Key: "patients", Title: "Patient Management", Description: "Register patients, track visit history, and keep demographics in one place.", Icon: "users"},
			{Key: "tests", Title: "Test Catalog", Description: "Order individual tests or panels with codes, reference ranges, and units.", Icon: "flask"},
			{Key: "results", Title: "Result Entry", Description: "Enter and validate results with automatic flagging of out-of-range values.", Icon: "clipboard"},
			{Key: "reports", Title: "Smart Reports", Description: "Generate clean, printable reports the moment results are ready.", Icon: "file-text"},
			{Key: "billing", Title: "Billing", Description: "Invoices, payments, and insurance claims without leaving the app.", Icon: "credit-card"},
			{Key: "analytics", Title: "Analytics", Description: "Daily workload, turnaround times, and revenue at a glance.", Icon: "bar-chart"},
		},
		FAQ: []FAQItem{
			{
				Question: "Can I try the product before buying?",
				Answer:   "Yes. The demo mode lets you create a patient, order tests, enter results, and preview a report without a subscription.",
			},
			{
				Question: "Is my laboratory data secure?",
				Answer:   "All data is encrypted in transit, stored per-account, and never shared between laboratories.",
			},
			{
				Question: "Do you support Arabic and right-to-left layouts?",
				Answer:   "Yes, the interface is available in English, Arabic, French, and Spanish, with full RTL support.",
			},
			{
				Question: "Can I import data from my current system?",
				Answer:   "Professional and Enterprise plans include assisted migration from spreadsheets and common LIS formats.",
			},
			{
				Question: "What happens when I hit the demo limits?",
				Answer:   "The demo allows one patient and five tests per account. To go further, start a free trial on any paid plan.",
			},
		},
	},
	"ar": {
		Locale: "ar",
		Plans: []Plan{
			{
				Key:          "starter",
				Name:         "الأساسية",
				Description:  "للمختبرات الصغيرة في بدايتها",
				PriceMonthly: f(49),
				PriceYearly:  f(490),
				Currency:     "USD",
				Features: []string{
					"حتى 500 مريض",
					"كتالوج الفحوصات الأساسي",
					"تقارير قابلة للطباعة",
					"دعم عبر البريد الإلكتروني",
				},
				CTA: "ابدأ التجربة المجانية",
			},
			{
				Key:          "professional",
				Name:         "الاحترافية",
				Description:  "للمختبرات المتنامية",
				PriceMonthly: f(149),
				PriceYearly:  f(1490),
				Currency:     "USD",
				Popular:      true,
				Features: []string{
					"عدد غير محدود من المرضى",
					"كتالوج كامل مع لوحات فحوصات مخصصة",
					"تقارير PDF بهوية المختبر",
					"الفوترة وإصدار الفواتير",
					"تتبع المخزون",
					"دعم ذو أولوية",
				},
				CTA: "ابدأ التجربة المجانية",
			},
			{
				Key:         "enterprise",
				Name:        "المؤسسات",
				Description: "لشبكات المستشفيات والسلاسل",
				Currency:    "USD",
				Features: []string{
					"كل ما في الخطة الاحترافية",
					"إدارة فروع متعددة",
					"تكامل مع أجهزة التحاليل",
					"مدير حساب مخصص",
					"اتفاقيات مستوى خدمة مخصصة",
				},
				CTA: "تواصل مع المبيعات",
			},
		},
		Features: []Feature{
			{Key: "patients", Title: "إدارة المرضى", Description: "سجل المرضى وتابع تاريخ الزيارات واحتفظ بالبيانات في مكان واحد.", Icon: "users"},
			{Key: "tests", Title: "كتالوج الفحوصات", Description: "اطلب فحوصات فردية أو لوحات برموز ونطاقات مرجعية ووحدات.", Icon: "flask"},
			{Key: "results", Title: "إدخال النتائج", Description: "أدخل النتائج وتحقق منها مع تمييز تلقائي للقيم خارج النطاق.", Icon: "clipboard"},
			{Key: "reports", Title: "تقارير ذكية", Description: "أنشئ تقارير أنيقة قابلة للطباعة فور جاهزية النتائج.", Icon: "file-text"},
			{Key: "billing", Title: "الفوترة", Description: "فواتير ومدفوعات ومطالبات تأمين دون مغادرة التطبيق.", Icon: "credit-card"},
			{Key: "analytics", Title: "التحليلات", Description: "حجم العمل اليومي وأزمنة الإنجاز والإيرادات في لمحة.", Icon: "bar-chart"},
		},
		FAQ: []FAQItem{
			{
				Question: "هل يمكنني تجربة المنتج قبل الشراء؟",
				Answer:   "نعم. يتيح لك الوضع التجريبي إنشاء مريض وطلب فحوصات وإدخال نتائج ومعاينة تقرير دون اشتراك.",
			},
			{
				Question: "هل بيانات مختبري آمنة؟",
				Answer:   "جميع البيانات مشفرة أثناء النقل ومخزنة لكل حساب على حدة ولا تُشارك بين المختبرات.",
			},
			{
				Question: "هل تدعمون العربية والتخطيط من اليمين إلى اليسار؟",
				Answer:   "نعم، الواجهة متوفرة بالإنجليزية والعربية والفرنسية والإسبانية مع دعم كامل للكتابة من اليمين إلى اليسار.",
			},
			{
				Question: "هل يمكنني استيراد البيانات من نظامي الحالي؟",
				Answer:   "تشمل خطتا الاحترافية والمؤسسات ترحيلًا مدعومًا من جداول البيانات وصيغ أنظمة المختبرات الشائعة.",
			},
			{
				Question: "ماذا يحدث عند بلوغ حدود الوضع التجريبي؟",
				Answer:   "يسمح الوضع التجريبي بمريض واحد وخمسة فحوصات لكل حساب. للمتابعة، ابدأ تجربة مجانية على أي خطة مدفوعة.",
			},
		},
	},
}

// CatalogFor returns the catalog for the requested locale, falling back
// to the default locale for unknown or not-yet-authored ones.
func CatalogFor(locale string) *Catalog {
	if c, ok := catalogs[locale]; ok {
		return c
	}
	return catalogs[DefaultLocale]
}
