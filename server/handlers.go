package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dot5enko/simple-stats-db/schema"
)

type createSeriesRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type appendRequest struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type boundsResponse struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

type countResponse struct {
	Name  string  `json:"name"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("POST expected"))
		return
	}

	var req createSeriesRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		writeError(w, http.StatusBadRequest, decodeErr)
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, errors.New("series name is required"))
		return
	}

	fieldType, typeErr := schema.ParseFieldType(req.Type)
	if typeErr != nil {
		writeError(w, http.StatusBadRequest, typeErr)
		return
	}

	if createErr := s.store.CreateSeries(req.Name, fieldType); createErr != nil {
		writeError(w, statusForStoreError(createErr), createErr)
		return
	}

	writeJson(w, http.StatusCreated, map[string]string{"name": req.Name, "type": fieldType.String()})
}

func (s *Server) handleAppend(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("POST expected"))
		return
	}

	var req appendRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		writeError(w, http.StatusBadRequest, decodeErr)
		return
	}

	if appendErr := s.store.Append(req.Name, req.Values); appendErr != nil {
		writeError(w, statusForStoreError(appendErr), appendErr)
		return
	}

	writeJson(w, http.StatusOK, map[string]int{"appended": len(req.Values)})
}

func (s *Server) handleBounds(w http.ResponseWriter, r *http.Request) {

	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, errors.New("name query param is required"))
		return
	}

	bounds, boundsErr := s.store.Bounds(name)
	if boundsErr != nil {
		writeError(w, statusForStoreError(boundsErr), boundsErr)
		return
	}

	writeJson(w, http.StatusOK, boundsResponse{Name: name, Min: bounds.Min, Max: bounds.Max})
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()

	name := query.Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, errors.New("name query param is required"))
		return
	}

	from, fromErr := strconv.ParseFloat(query.Get("from"), 64)
	if fromErr != nil {
		writeError(w, http.StatusBadRequest, errors.New("from query param is not a number"))
		return
	}

	to, toErr := strconv.ParseFloat(query.Get("to"), 64)
	if toErr != nil {
		writeError(w, http.StatusBadRequest, errors.New("to query param is not a number"))
		return
	}

	count, countErr := s.store.CountInRange(name, from, to)
	if countErr != nil {
		writeError(w, statusForStoreError(countErr), countErr)
		return
	}

	writeJson(w, http.StatusOK, countResponse{Name: name, From: from, To: to, Count: count})
}
