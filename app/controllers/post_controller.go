package controllers

import (
	"html/template"
	"net/http"
	"strconv"

	"blogbox/app/access"
	"blogbox/app/forms"
	"blogbox/app/models"
	"blogbox/app/repositories"
	"blogbox/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	templates   map[string]*template.Template
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, basePath string) *PostController {
	return &PostController{
		postService: postService,
		templates:   loadTemplates(basePath),
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		http.Error(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	pc.render(w, r, "index", pageData{Posts: posts})
}

// Show handles displaying a single post with its comments and an
// empty comment form
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	pc.render(w, r, "post", pageData{Post: post, Form: &forms.CommentForm{}})
}

// New displays the form for creating a new post. Non-admins bounce to
// the listing with no error page.
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	identity := access.FromContext(r.Context())
	if d := access.Authorize(identity, access.CreatePost); !d.Allowed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	pc.render(w, r, "make-post", pageData{Form: &forms.PostForm{}})
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	identity := access.FromContext(r.Context())
	if d := access.Authorize(identity, access.CreatePost); !d.Allowed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	form := forms.NewPostForm(r)
	if errs := forms.Errors(form); len(errs) > 0 {
		pc.render(w, r, "make-post", pageData{Form: form, Errors: errs})
		return
	}

	post := &models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		ImgURL:   form.ImgURL,
		Body:     form.Body,
	}
	err := pc.postService.CreatePost(post, identity)
	if err == repositories.ErrDuplicateTitle {
		pc.render(w, r, "make-post", pageData{
			Form:   form,
			Errors: map[string]string{"Title": "A post with this title already exists."},
		})
		return
	}
	if err != nil {
		http.Error(w, "Failed to create post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Edit displays the edit form for an existing post, prefilled
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	identity := access.FromContext(r.Context())
	if d := access.Authorize(identity, access.EditPost); !d.Allowed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	post, err := pc.postService.GetPost(id)
	if err != nil {
		// Admin-only UI should not normally reach a missing post
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := &forms.PostForm{
		Title:    post.Title,
		Subtitle: post.Subtitle,
		ImgURL:   post.ImgURL,
		Body:     post.Body,
	}
	pc.render(w, r, "make-post", pageData{Post: post, Form: form, Editing: true})
}

// Update handles committing an edit to an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	identity := access.FromContext(r.Context())
	if d := access.Authorize(identity, access.EditPost); !d.Allowed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	form := forms.NewPostForm(r)
	if errs := forms.Errors(form); len(errs) > 0 {
		pc.render(w, r, "make-post", pageData{Form: form, Errors: errs, Editing: true})
		return
	}

	post := &models.Post{
		ID:       id,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		ImgURL:   form.ImgURL,
		Body:     form.Body,
	}
	switch err := pc.postService.UpdatePost(post); err {
	case nil:
	case repositories.ErrNotFound:
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case repositories.ErrDuplicateTitle:
		pc.render(w, r, "make-post", pageData{
			Form:    form,
			Errors:  map[string]string{"Title": "A post with this title already exists."},
			Editing: true,
		})
		return
	default:
		http.Error(w, "Failed to update post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/post/"+strconv.Itoa(id), http.StatusSeeOther)
}

// Delete handles deleting a post. Deleting an already-missing post is
// a no-op with the same redirect.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	identity := access.FromContext(r.Context())
	if d := access.Authorize(identity, access.DeletePost); !d.Allowed {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := pc.postService.DeletePost(id); err != nil && err != repositories.ErrNotFound {
		http.Error(w, "Failed to delete post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (pc *PostController) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	data.Identity = access.FromContext(r.Context())
	if data.Flash == "" {
		data.Flash = popFlash(w, r)
	}
	if err := pc.templates[page].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
