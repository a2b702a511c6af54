package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered account. The first account ever
// registered (ID 1) is the blog admin.
type User struct {
	ID           int       `validate:"required,gte=1"`
	Email        string    `validate:"required,email,max=250"`
	PasswordHash string    `validate:"required"`
	Name         string    `validate:"required,max=250"`
	CreatedAt    time.Time `validate:"required"`
}

// Post represents a blog post with comments.
type Post struct {
	ID       int        `validate:"required,gte=1"`
	AuthorID int        `validate:"required,gte=1"`
	Author   string     `validate:"required"`
	Title    string     `validate:"required,max=250"`
	Subtitle string     `validate:"required,max=250"`
	Date     string     `validate:"required"`
	Body     string     `validate:"required"`
	ImgURL   string     `validate:"required,url,max=250"`
	Comments []*Comment `validate:"-"`
}

// Comment represents a comment on a blog post.
type Comment struct {
	ID        int       `validate:"required,gte=1"`
	PostID    int       `validate:"required,gte=1"`
	AuthorID  int       `validate:"required,gte=1"`
	Author    string    `validate:"required"`
	Text      string    `validate:"required"`
	CreatedAt time.Time `validate:"required"`
}
