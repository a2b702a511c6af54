package services

import (
	"strings"
	"testing"

	"blogbox/app/models"
	"blogbox/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

func (m *mockUserRepo) Create(user *models.User) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repositories.ErrDuplicateEmail
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.BeforeCreate()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func TestUserService(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	t.Run("register", func(t *testing.T) {
		user, err := service.Register("a@x.com", "pw1", "Alice")
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		user, err := repo.GetByEmail("a@x.com")
		require.NoError(t, err)
		assert.NotEqual(t, "pw1", user.PasswordHash)
		assert.NotContains(t, user.PasswordHash, "pw1")
	})

	t.Run("register duplicate email leaves store unchanged", func(t *testing.T) {
		_, err := service.Register("a@x.com", "pw2", "Impostor")
		assert.Equal(t, repositories.ErrDuplicateEmail, err)
		assert.Len(t, repo.users, 1)
	})

	t.Run("register empty password", func(t *testing.T) {
		_, err := service.Register("c@x.com", "", "Carol")
		assert.Error(t, err)
	})

	t.Run("authenticate success", func(t *testing.T) {
		user, err := service.Authenticate("a@x.com", "pw1")
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("authenticate wrong password", func(t *testing.T) {
		_, err := service.Authenticate("a@x.com", "wrong")
		assert.Equal(t, ErrInvalidCredential, err)
	})

	t.Run("authenticate unknown email", func(t *testing.T) {
		_, err := service.Authenticate("nobody@x.com", "pw1")
		assert.Equal(t, repositories.ErrNotFound, err)
	})

	t.Run("authenticate never succeeds on a wrong secret", func(t *testing.T) {
		_, err := service.Register("b@x.com", "pw2", "Bob")
		require.NoError(t, err)

		// Each stored secret only matches its own user
		_, err = service.Authenticate("a@x.com", "pw2")
		assert.Equal(t, ErrInvalidCredential, err)
		_, err = service.Authenticate("b@x.com", "pw1")
		assert.Equal(t, ErrInvalidCredential, err)
	})
}
