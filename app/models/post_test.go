package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPost() *Post {
	return &Post{
		ID:       1,
		AuthorID: 1,
		Author:   "Alice",
		Title:    "Hello",
		Subtitle: "First post",
		Date:     "August 28, 2026",
		Body:     "Some content",
		ImgURL:   "http://example.com/x.png",
	}
}

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Post)
		wantErr bool
	}{
		{"valid post", func(p *Post) {}, false},
		{"missing title", func(p *Post) { p.Title = "" }, true},
		{"missing subtitle", func(p *Post) { p.Subtitle = "" }, true},
		{"missing body", func(p *Post) { p.Body = "" }, true},
		{"missing image URL", func(p *Post) { p.ImgURL = "" }, true},
		{"malformed image URL", func(p *Post) { p.ImgURL = "not a url" }, true},
		{"missing author", func(p *Post) { p.Author = ""; p.AuthorID = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.mutate(post)
			err := post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Title: "Hello"}

	assert.Empty(t, post.Date)
	post.BeforeCreate()
	assert.NotEmpty(t, post.Date)
}

func TestPostAddComment(t *testing.T) {
	post := validPost()

	t.Run("add comment", func(t *testing.T) {
		comment := &Comment{ID: 1, AuthorID: 2, Author: "Bob", Text: "Nice!"}

		err := post.AddComment(comment)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(post.Comments))
		assert.Equal(t, post.ID, comment.PostID)
	})

	t.Run("add nil comment", func(t *testing.T) {
		err := post.AddComment(nil)
		assert.Error(t, err)
	})
}
