package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dot5enko/simple-stats-db/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, storeErr := store.New(store.Config{
		PathToStorage: t.TempDir(),
	})
	if storeErr != nil {
		t.Fatalf("unable to open store : %v", storeErr)
	}

	srv := httptest.NewServer(New(st).Handler())
	t.Cleanup(srv.Close)

	return srv
}

func postJson(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	encoded, _ := json.Marshal(body)

	resp, err := http.Post(url, "application/json", bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("request failed : %v", err)
	}

	return resp
}

func decodeJson(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("unable to decode response : %v", err)
	}
}

func TestServerSeriesLifecycle(t *testing.T) {

	srv := newTestServer(t)

	resp := postJson(t, srv.URL+"/series/create", map[string]string{
		"name": "cpu",
		"type": "float64",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected %d but got %d", http.StatusCreated, resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJson(t, srv.URL+"/series/append", map[string]any{
		"name":   "cpu",
		"values": []float64{3, -1, 4, 1, 5, -9, 2},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected %d but got %d", http.StatusOK, resp.StatusCode)
	}
	resp.Body.Close()

	boundsResp, boundsErr := http.Get(srv.URL + "/series/bounds?name=cpu")
	if boundsErr != nil {
		t.Fatalf("request failed : %v", boundsErr)
	}
	if boundsResp.StatusCode != http.StatusOK {
		t.Fatalf("Expected %d but got %d", http.StatusOK, boundsResp.StatusCode)
	}

	var bounds boundsResponse
	decodeJson(t, boundsResp, &bounds)

	if bounds.Min != -9 {
		t.Errorf("Expected %.2f but got %.2f", -9.0, bounds.Min)
	}
	if bounds.Max != 5 {
		t.Errorf("Expected %.2f but got %.2f", 5.0, bounds.Max)
	}

	countResp, countErr := http.Get(srv.URL + "/series/count?name=cpu&from=0&to=5")
	if countErr != nil {
		t.Fatalf("request failed : %v", countErr)
	}

	var count countResponse
	decodeJson(t, countResp, &count)

	if count.Count != 4 {
		t.Errorf("Expected %d but got %d", 4, count.Count)
	}
}

func TestServerEmptySeriesBounds(t *testing.T) {

	srv := newTestServer(t)

	resp := postJson(t, srv.URL+"/series/create", map[string]string{
		"name": "empty",
		"type": "int64",
	})
	resp.Body.Close()

	boundsResp, boundsErr := http.Get(srv.URL + "/series/bounds?name=empty")
	if boundsErr != nil {
		t.Fatalf("request failed : %v", boundsErr)
	}
	defer boundsResp.Body.Close()

	if boundsResp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected %d but got %d", http.StatusNotFound, boundsResp.StatusCode)
	}
}

func TestServerRootAndNotFound(t *testing.T) {

	srv := newTestServer(t)

	rootResp, rootErr := http.Get(srv.URL + "/")
	if rootErr != nil {
		t.Fatalf("request failed : %v", rootErr)
	}
	defer rootResp.Body.Close()

	if rootResp.StatusCode != http.StatusOK {
		t.Errorf("Expected %d but got %d", http.StatusOK, rootResp.StatusCode)
	}

	missResp, missErr := http.Get(srv.URL + "/series/unknown-op")
	if missErr != nil {
		t.Fatalf("request failed : %v", missErr)
	}
	defer missResp.Body.Close()

	if missResp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected %d but got %d", http.StatusNotFound, missResp.StatusCode)
	}
}

func TestServerBadCreatePayload(t *testing.T) {

	srv := newTestServer(t)

	resp := postJson(t, srv.URL+"/series/create", map[string]string{
		"name": "x",
		"type": "decimal128",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected %d but got %d", http.StatusBadRequest, resp.StatusCode)
	}
}
