package controllers

import (
	"html/template"
	"net/http"

	"blogbox/app/access"
)

// PagesController serves the static informational pages.
type PagesController struct {
	templates map[string]*template.Template
}

// NewPagesController creates a new PagesController
func NewPagesController(basePath string) *PagesController {
	return &PagesController{templates: loadTemplates(basePath)}
}

// About renders the about page
func (pg *PagesController) About(w http.ResponseWriter, r *http.Request) {
	pg.render(w, r, "about")
}

// Contact renders the contact page
func (pg *PagesController) Contact(w http.ResponseWriter, r *http.Request) {
	pg.render(w, r, "contact")
}

func (pg *PagesController) render(w http.ResponseWriter, r *http.Request, page string) {
	data := pageData{
		Identity: access.FromContext(r.Context()),
		Flash:    popFlash(w, r),
	}
	if err := pg.templates[page].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
