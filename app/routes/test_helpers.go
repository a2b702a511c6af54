package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T, db *badger.DB) http.Handler {
	// Tests run from app/routes; the real templates live two levels up.
	return SetupRoutesWithPath(db, "../..")
}

// browser drives the router like a cookie-keeping client: one browser
// per identity.
type browser struct {
	t      *testing.T
	router http.Handler
	jar    map[string]*http.Cookie
}

func newBrowser(t *testing.T, router http.Handler) *browser {
	return &browser{t: t, router: router, jar: make(map[string]*http.Cookie)}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do("GET", path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do("POST", path, form)
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range b.jar {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			delete(b.jar, c.Name)
		} else {
			b.jar[c.Name] = c
		}
	}
	return w
}

// followRedirect asserts the response is a redirect and GETs its target.
func (b *browser) followRedirect(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	loc, err := w.Result().Location()
	require.NoError(b.t, err)
	return b.get(loc.Path)
}

func redirectPath(t *testing.T, w *httptest.ResponseRecorder) string {
	loc, err := w.Result().Location()
	require.NoError(t, err)
	return loc.Path
}

func registerForm(email, password, name string) url.Values {
	return url.Values{
		"email":    {email},
		"password": {password},
		"name":     {name},
	}
}

func postForm(title, subtitle, imgURL, body string) url.Values {
	return url.Values{
		"title":    {title},
		"subtitle": {subtitle},
		"img_url":  {imgURL},
		"body":     {body},
	}
}
