package models

import (
	"errors"
	"time"
)

// DateFormat is the display format for post dates, e.g. "August 28, 2026".
const DateFormat = "January 02, 2006"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.Date == "" {
		p.Date = time.Now().Format(DateFormat)
	}
}

// AddComment adds a comment to the post
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}
