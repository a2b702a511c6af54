package controllers

import (
	"html/template"
	"net/http"

	"blogbox/app/access"
	"blogbox/app/forms"
	"blogbox/app/repositories"
	"blogbox/app/services"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	userService *services.UserService
	sessions    *access.SessionManager
	templates   map[string]*template.Template
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, sessions *access.SessionManager, basePath string) *AuthController {
	return &AuthController{
		userService: userService,
		sessions:    sessions,
		templates:   loadTemplates(basePath),
	}
}

// Register handles GET (form) and POST (commit) for /register. A
// duplicate email flashes a warning and hands the visitor over to the
// login flow; success logs the new user in right away.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		ac.render(w, r, "register", pageData{Form: &forms.RegisterForm{}})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	form := forms.NewRegisterForm(r)
	if errs := forms.Errors(form); len(errs) > 0 {
		ac.render(w, r, "register", pageData{Form: form, Errors: errs})
		return
	}

	user, err := ac.userService.Register(form.Email, form.Password, form.Name)
	if err == repositories.ErrDuplicateEmail {
		setFlash(w, "You are already registered with this email, Login instead")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, "Failed to register: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := ac.sessions.Establish(w, user.ID); err != nil {
		http.Error(w, "Failed to establish session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Login handles GET (form) and POST (commit) for /login. An unknown
// email and a wrong password both flash a warning and redisplay the
// form.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		ac.render(w, r, "login", pageData{Form: &forms.LoginForm{}})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	form := forms.NewLoginForm(r)
	if errs := forms.Errors(form); len(errs) > 0 {
		ac.render(w, r, "login", pageData{Form: form, Errors: errs})
		return
	}

	user, err := ac.userService.Authenticate(form.Email, form.Password)
	switch err {
	case nil:
	case repositories.ErrNotFound:
		setFlash(w, "Email Not Found")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case services.ErrInvalidCredential:
		setFlash(w, "Incorrect password")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	default:
		http.Error(w, "Failed to log in: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := ac.sessions.Establish(w, user.ID); err != nil {
		http.Error(w, "Failed to establish session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session unconditionally and bounces to the listing.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.sessions.Clear(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ac *AuthController) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	data.Identity = access.FromContext(r.Context())
	if data.Flash == "" {
		data.Flash = popFlash(w, r)
	}
	if err := ac.templates[page].ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
