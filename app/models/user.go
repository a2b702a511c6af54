package models

import (
	"errors"
	"time"
)

// AdminUserID is the identifier of the single admin account. The
// first registrant gets ID 1 and with it every post mutation right.
const AdminUserID = 1

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}

	if u.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// IsAdmin reports whether this user is the designated admin.
func (u *User) IsAdmin() bool {
	return u.ID == AdminUserID
}
