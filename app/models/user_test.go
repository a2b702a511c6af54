package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{
			name: "valid user",
			user: &User{
				ID:           1,
				Email:        "alice@example.com",
				PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
				Name:         "Alice",
				CreatedAt:    time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing email",
			user: &User{
				ID:           1,
				PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
				Name:         "Alice",
				CreatedAt:    time.Now(),
			},
			wantErr: true,
		},
		{
			name: "malformed email",
			user: &User{
				ID:           1,
				Email:        "not-an-email",
				PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
				Name:         "Alice",
				CreatedAt:    time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing name",
			user: &User{
				ID:           1,
				Email:        "alice@example.com",
				PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
				CreatedAt:    time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing password hash",
			user: &User{
				ID:        1,
				Email:     "alice@example.com",
				Name:      "Alice",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserBeforeCreate(t *testing.T) {
	user := &User{Email: "alice@example.com", Name: "Alice"}

	assert.True(t, user.CreatedAt.IsZero())
	user.BeforeCreate()
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{ID: 1}
	other := &User{ID: 2}

	assert.True(t, admin.IsAdmin())
	assert.False(t, other.IsAdmin())
}
