package services

import (
	"fmt"
	"time"

	"blogbox/app/access"
	"blogbox/app/models"
	"blogbox/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost creates a new blog post authored by the given identity.
// The caller has already validated the form fields and authorized the
// action.
func (s *PostService) CreatePost(post *models.Post, author access.Identity) error {
	if err := validatePost(post); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	post.AuthorID = author.UserID
	post.Author = author.Name
	post.Date = time.Now().Format(models.DateFormat)

	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves all posts in creation order
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// UpdatePost overwrites the mutable fields of an existing post. The
// store keeps author and date from the stored record.
func (s *PostService) UpdatePost(post *models.Post) error {
	if err := validatePost(post); err != nil {
		return fmt.Errorf("invalid post: %v", err)
	}

	return s.postRepo.Update(post)
}

// DeletePost deletes a post and all its comments. The store cascades
// in a single transaction.
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}

// validatePost validates a post's fields
func validatePost(post *models.Post) error {
	if post.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(post.Title) > 250 {
		return fmt.Errorf("title is too long (maximum 250 characters)")
	}
	if post.Subtitle == "" {
		return fmt.Errorf("subtitle is required")
	}
	if post.ImgURL == "" {
		return fmt.Errorf("image URL is required")
	}
	if post.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}
