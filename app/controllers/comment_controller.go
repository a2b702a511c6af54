package controllers

import (
	"html/template"
	"net/http"
	"strconv"

	"blogbox/app/access"
	"blogbox/app/forms"
	"blogbox/app/repositories"
	"blogbox/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles comment submissions on a post's page.
type CommentController struct {
	commentService *services.CommentService
	postService    *services.PostService
	templates      map[string]*template.Template
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, postService *services.PostService, basePath string) *CommentController {
	return &CommentController{
		commentService: commentService,
		postService:    postService,
		templates:      loadTemplates(basePath),
	}
}

// Create handles POST /post/{id}: a valid comment from an
// authenticated identity is committed and the post redisplayed; an
// anonymous submission flashes a warning and redirects to login.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	form := forms.NewCommentForm(r)
	if errs := forms.Errors(form); len(errs) > 0 {
		post, err := cc.postService.GetPost(postID)
		if err != nil {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		cc.render(w, r, "post", pageData{Post: post, Form: form, Errors: errs})
		return
	}

	identity := access.FromContext(r.Context())
	if d := access.Authorize(identity, access.Comment); !d.Allowed {
		setFlash(w, d.Reason)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	_, err = cc.commentService.AddComment(postID, identity, form.Text)
	if err == repositories.ErrNotFound {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to add comment: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/post/"+strconv.Itoa(postID), http.StatusSeeOther)
}

func (cc *CommentController) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	data.Identity = access.FromContext(r.Context())
	if data.Flash == "" {
		data.Flash = popFlash(w, r)
	}
	if err := cc.templates[page].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
