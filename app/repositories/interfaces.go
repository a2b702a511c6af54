package repositories

import (
	"time"

	"blogbox/app/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID int) ([]*models.Comment, error)
}

// SessionRepository defines the interface for session token storage
type SessionRepository interface {
	Create(token string, userID int, expiresAt time.Time) error
	Get(token string) (int, error)
	Delete(token string) error
}
