package routes

import (
	"net/http"
	"path/filepath"
	"time"

	"blogbox/app/access"
	"blogbox/app/controllers"
	"blogbox/app/middleware"
	"blogbox/app/repositories"
	"blogbox/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

const sessionMaxAge = 24 * time.Hour

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(db *badger.DB) *mux.Router {
	return SetupRoutesWithPath(db, "")
}

// SetupRoutesWithPath wires repositories, services and controllers
// over the given Badger DB, resolving templates and static assets
// relative to basePath.
func SetupRoutesWithPath(db *badger.DB, basePath string) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	sessionRepo := repositories.NewBadgerSessionRepository(db)

	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	sessions := access.NewSessionManager(sessionRepo, sessionMaxAge)

	authController := controllers.NewAuthController(userService, sessions, basePath)
	postController := controllers.NewPostController(postService, basePath)
	commentController := controllers.NewCommentController(commentService, postService, basePath)
	pagesController := controllers.NewPagesController(basePath)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CurrentUser(sessions, userService))

	// Serve static files
	staticDir := filepath.Join(basePath, "static")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	router.HandleFunc("/", postController.Index).Methods("GET")

	// Identity endpoints
	router.HandleFunc("/register", authController.Register).Methods("GET", "POST")
	router.HandleFunc("/login", authController.Login).Methods("GET", "POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")

	// Post and comment endpoints
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", commentController.Create).Methods("POST")
	router.HandleFunc("/new-post", postController.New).Methods("GET")
	router.HandleFunc("/new-post", postController.Create).Methods("POST")
	router.HandleFunc("/edit-post/{id:[0-9]+}", postController.Edit).Methods("GET")
	router.HandleFunc("/edit-post/{id:[0-9]+}", postController.Update).Methods("POST")
	router.HandleFunc("/delete/{id:[0-9]+}", postController.Delete).Methods("GET")

	// Informational pages
	router.HandleFunc("/about", pagesController.About).Methods("GET")
	router.HandleFunc("/contact", pagesController.Contact).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
