package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dot5enko/simple-stats-db/ops"
	"github.com/dot5enko/simple-stats-db/router"
	"github.com/dot5enko/simple-stats-db/store"
)

type Server struct {
	store  *store.Store
	router *router.Router
}

func New(st *store.Store) *Server {

	s := &Server{
		store: st,
	}

	s.router = router.New(
		http.HandlerFunc(s.handleRoot),
		http.HandlerFunc(s.handleNotFound),
	)

	s.router.AddHandlerFunc("/series/create", s.handleCreate)
	s.router.AddHandlerFunc("/series/append", s.handleAppend)
	s.router.AddHandlerFunc("/series/bounds", s.handleBounds)
	s.router.AddHandlerFunc("/series/count", s.handleCount)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJson(w http.ResponseWriter, code int, v any) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	encodeErr := json.NewEncoder(w).Encode(v)
	if encodeErr != nil {
		log.Printf("unable to encode response : %s", encodeErr.Error())
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJson(w, code, errorResponse{Error: err.Error()})
}

func statusForStoreError(err error) int {
	switch {
	case errors.Is(err, store.ErrSeriesNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrSeriesExists):
		return http.StatusConflict
	case errors.Is(err, ops.ErrEmptyInput):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, map[string]string{
		"service": "simple-stats-db",
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, errors.New("no handler for path "+r.URL.Path))
}
