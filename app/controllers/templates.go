package controllers

import (
	"html/template"
	"path/filepath"

	"blogbox/app/access"
	"blogbox/app/models"
)

// pageData is the bag handed to every template. Page-specific fields
// stay zero for pages that do not use them.
type pageData struct {
	Identity access.Identity
	Flash    string
	Posts    []*models.Post
	Post     *models.Post
	Form     interface{}
	Errors   map[string]string
	Editing  bool
}

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	pages := []string{"index", "post", "register", "login", "make-post", "about", "contact"}
	for _, page := range pages {
		templates[page] = template.Must(template.ParseFiles(
			filepath.Join(basePath, "app/views/layout.html"),
			filepath.Join(basePath, "app/views/"+page+".html"),
		))
	}
	return templates
}
