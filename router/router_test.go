package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
}

func lookupBody(t *testing.T, r *Router, path string) string {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://localhost"+path, nil)
	req.URL.Path = path

	r.ServeHTTP(rec, req)

	return rec.Body.String()
}

func newTestRouter() *Router {

	r := New(textHandler("root handler"), textHandler("not found handler"))
	r.AddHandler("/home/about", textHandler("about handler"))

	return r
}

func TestRouterRoot(t *testing.T) {

	r := newTestRouter()

	if got := lookupBody(t, r, "/"); got != "root handler" {
		t.Errorf("Expected %q but got %q", "root handler", got)
	}
}

func TestRouterIntermediateNodeIsNotFound(t *testing.T) {

	r := newTestRouter()

	// /home exists as a trie node but carries no handler
	if got := lookupBody(t, r, "/home"); got != "not found handler" {
		t.Errorf("Expected %q but got %q", "not found handler", got)
	}
}

func TestRouterLeaf(t *testing.T) {

	r := newTestRouter()

	if got := lookupBody(t, r, "/home/about"); got != "about handler" {
		t.Errorf("Expected %q but got %q", "about handler", got)
	}
}

func TestRouterTrailingSlash(t *testing.T) {

	r := newTestRouter()

	if got := lookupBody(t, r, "/home/about/"); got != "about handler" {
		t.Errorf("Expected %q but got %q", "about handler", got)
	}
}

func TestRouterBeyondLeaf(t *testing.T) {

	r := newTestRouter()

	if got := lookupBody(t, r, "/home/about/me"); got != "not found handler" {
		t.Errorf("Expected %q but got %q", "not found handler", got)
	}
}

func TestRouterMiss(t *testing.T) {

	r := newTestRouter()

	if got := lookupBody(t, r, "/blog/2019-01-15/my-awesome-blog-post"); got != "not found handler" {
		t.Errorf("Expected %q but got %q", "not found handler", got)
	}
}
