package entity

import (
	"time"
)

// User is the aggregate root for the user domain. PasswordHash is nil for
// accounts created through code verification that never set a password.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether a password has been bound to the account.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
