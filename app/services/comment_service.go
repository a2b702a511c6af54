package services

import (
	"fmt"

	"blogbox/app/access"
	"blogbox/app/models"
	"blogbox/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment creates a new comment on a post, authored by the given
// identity. Returns repositories.ErrNotFound when the post is gone.
func (s *CommentService) AddComment(postID int, author access.Identity, text string) (*models.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("invalid comment: text is required")
	}
	if !author.Authenticated() {
		return nil, fmt.Errorf("invalid comment: author is required")
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: author.UserID,
		Author:   author.Name,
		Text:     text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments retrieves all comments for a post in creation order
func (s *CommentService) ListComments(postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}
