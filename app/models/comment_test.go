package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				ID:        1,
				PostID:    1,
				AuthorID:  2,
				Author:    "Bob",
				Text:      "Nice!",
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing text",
			comment: &Comment{
				ID:        1,
				PostID:    1,
				AuthorID:  2,
				Author:    "Bob",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing parent post",
			comment: &Comment{
				ID:        1,
				AuthorID:  2,
				Author:    "Bob",
				Text:      "Nice!",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing author",
			comment: &Comment{
				ID:        1,
				PostID:    1,
				Text:      "Nice!",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero creation time",
			comment: &Comment{
				ID:       1,
				PostID:   1,
				AuthorID: 2,
				Author:   "Bob",
				Text:     "Nice!",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{PostID: 1, Text: "Nice!"}

	assert.True(t, comment.CreatedAt.IsZero())
	comment.BeforeCreate()
	assert.False(t, comment.CreatedAt.IsZero())
}
