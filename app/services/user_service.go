package services

import (
	"errors"
	"fmt"
	"strings"

	"blogbox/app/models"
	"blogbox/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredential is returned when the email resolves to a user
// but the password does not match its stored hash.
var ErrInvalidCredential = errors.New("incorrect password")

// UserService handles registration and credential verification.
// Passwords are stored as bcrypt hashes, never in plaintext.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account. The email must not be registered
// yet; repositories.ErrDuplicateEmail passes through untouched so
// callers can route the duplicate to the login flow.
func (s *UserService) Register(email, password, name string) (*models.User, error) {
	if password == "" {
		return nil, fmt.Errorf("invalid user: password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate looks the user up by email and verifies the password
// against the stored hash. bcrypt's comparison is constant-time.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
