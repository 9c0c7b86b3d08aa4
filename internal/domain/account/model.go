package account

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to an account. Demo visitors sign up as "user";
// "admin" is only ever granted out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account maps to the account table. PasswordHash is nil for accounts
// provisioned through an external identity provider; those accounts can
// never pass the password login flow.
type Account struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	Email               string     `db:"email" json:"email"`
	Name                *string    `db:"name" json:"name,omitempty"`
	PasswordHash        *string    `db:"password_hash" json:"-"`
	Image               *string    `db:"image" json:"image,omitempty"`
	Role                string     `db:"role" json:"role"`
	IsActive            bool       `db:"is_active" json:"is_active"`
	EmailVerifiedAt     *time.Time `db:"email_verified_at" json:"email_verified_at,omitempty"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	DemoPatientsCreated int        `db:"demo_patients_created" json:"demo_patients_created"`
	DemoTestsCreated    int        `db:"demo_tests_created" json:"demo_tests_created"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}
