package router

import (
	"net/http"
	"strings"
)

// Router dispatches requests through a path trie split on "/". Requests for
// "" or "/" hit the root handler, unknown paths fall back to the not-found
// handler, and a trailing slash resolves to the same handler as without it.
type Router struct {
	trie *RouteTrie

	notFoundHandler http.Handler
}

func New(rootHandler, notFoundHandler http.Handler) *Router {
	return &Router{
		trie:            NewRouteTrie(rootHandler),
		notFoundHandler: notFoundHandler,
	}
}

func splitPath(path string) []string {

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}

func (r *Router) AddHandler(path string, handler http.Handler) {
	r.trie.Insert(splitPath(path), handler)
}

func (r *Router) AddHandlerFunc(path string, handler http.HandlerFunc) {
	r.AddHandler(path, handler)
}

// Lookup never returns nil: misses resolve to the not-found handler.
func (r *Router) Lookup(path string) http.Handler {

	found := r.trie.Find(splitPath(path))
	if found == nil {
		return r.notFoundHandler
	}

	return found
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Lookup(req.URL.Path).ServeHTTP(w, req)
}
