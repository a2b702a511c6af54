package services

import (
	"testing"

	"blogbox/app/access"
	"blogbox/app/models"
	"blogbox/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	postRepo := newMockPostRepo()
	commentRepo := newMockCommentRepo(postRepo)
	service := NewCommentService(commentRepo, postRepo)

	bob := access.Identity{UserID: 2, Name: "Bob"}

	require.NoError(t, postRepo.Create(&models.Post{
		Title:    "Hello",
		Subtitle: "S",
		Body:     "B",
		ImgURL:   "http://i/x.png",
	}))

	t.Run("add comment", func(t *testing.T) {
		comment, err := service.AddComment(1, bob, "Nice!")
		require.NoError(t, err)
		assert.Equal(t, 1, comment.ID)
		assert.Equal(t, 1, comment.PostID)
		assert.Equal(t, 2, comment.AuthorID)
		assert.Equal(t, "Bob", comment.Author)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("add comment to missing post", func(t *testing.T) {
		_, err := service.AddComment(999, bob, "lost")
		assert.Equal(t, repositories.ErrNotFound, err)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		_, err := service.AddComment(1, bob, "")
		assert.Error(t, err)
	})

	t.Run("anonymous author is rejected", func(t *testing.T) {
		_, err := service.AddComment(1, access.Anonymous, "sneaky")
		assert.Error(t, err)
	})

	t.Run("list comments in creation order", func(t *testing.T) {
		_, err := service.AddComment(1, bob, "second")
		require.NoError(t, err)

		comments, err := service.ListComments(1)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "Nice!", comments[0].Text)
		assert.Equal(t, "second", comments[1].Text)
	})

	t.Run("list comments of missing post", func(t *testing.T) {
		_, err := service.ListComments(999)
		assert.Equal(t, repositories.ErrNotFound, err)
	})
}
