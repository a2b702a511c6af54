package middleware

import (
	"log"
	"net/http"
	"time"

	"blogbox/app/access"
	"blogbox/app/services"
)

// Logger logs information about each request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s took %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// Recoverer recovers from panics and logs the error
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC: %v (%s %s)", err, r.Method, r.URL.Path)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CurrentUser resolves the session cookie into an explicit identity on
// the request context. Anonymous requests carry access.Anonymous; no
// handler reads session state directly.
func CurrentUser(sessions *access.SessionManager, users *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := access.Anonymous
			if id, ok := sessions.CurrentUserID(r); ok {
				if user, err := users.GetUser(id); err == nil {
					identity = access.Identity{UserID: user.ID, Name: user.Name}
				}
			}
			ctx := access.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
