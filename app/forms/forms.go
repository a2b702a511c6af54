// Package forms declares one validation schema per input shape. Every
// form is checked here, before any store call; the stores never need
// to re-validate field formats.
package forms

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PostForm is the input shape for creating or editing a post.
type PostForm struct {
	Title    string `validate:"required"`
	Subtitle string `validate:"required"`
	ImgURL   string `validate:"required,url"`
	Body     string `validate:"required"`
}

// RegisterForm is the input shape for account registration.
type RegisterForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
}

// LoginForm is the input shape for logging in.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// CommentForm is the input shape for submitting a comment.
type CommentForm struct {
	Text string `validate:"required"`
}

// NewPostForm fills a PostForm from a parsed request.
func NewPostForm(r *http.Request) *PostForm {
	return &PostForm{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImgURL:   r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
}

// NewRegisterForm fills a RegisterForm from a parsed request.
func NewRegisterForm(r *http.Request) *RegisterForm {
	return &RegisterForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Name:     r.FormValue("name"),
	}
}

// NewLoginForm fills a LoginForm from a parsed request.
func NewLoginForm(r *http.Request) *LoginForm {
	return &LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
}

// NewCommentForm fills a CommentForm from a parsed request.
func NewCommentForm(r *http.Request) *CommentForm {
	return &CommentForm{Text: r.FormValue("text")}
}

// Errors validates a form and returns per-field messages, keyed by
// struct field name. An empty map means the form is valid.
func Errors(form interface{}) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs[""] = err.Error()
		return errs
	}
	for _, fe := range invalid {
		switch fe.Tag() {
		case "required":
			errs[fe.Field()] = "This field is required."
		case "url":
			errs[fe.Field()] = "Invalid URL."
		case "email":
			errs[fe.Field()] = "Invalid email address."
		default:
			errs[fe.Field()] = "Invalid value."
		}
	}
	return errs
}
