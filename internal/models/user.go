package models

import "time"

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  []byte
	Role          UserRole
	CompanyName   string
	ContactNumber string
	AccountSID    *string
	AuthToken     *string

	// Phone and Address exist only in the mock backend's dataset; the
	// database schema does not carry them.
	Phone   string
	Address string

	CreatedAt time.Time
}

// UserPatch is the whitelisted subset of fields a PUT may change. Nil means
// "leave untouched".
type UserPatch struct {
	Name          *string
	CompanyName   *string
	ContactNumber *string
	AccountSID    *string
	AuthToken     *string
}
