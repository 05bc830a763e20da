// Package testutil provides helpers for endpoint tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"fincalc/internal/config"
	"fincalc/internal/server"
	scenariostore "fincalc/internal/services/scenarios"
	"fincalc/internal/services/vault"
)

// TestServer wraps httptest.Server with convenience methods for the JSON
// API.
type TestServer struct {
	Server *httptest.Server
	Store  *scenariostore.Store
	Vault  *vault.Vault
	t      *testing.T
}

// NewServer starts a test server with an isolated store and vault. The
// server is shut down when the test finishes.
func NewServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := config.Default()
	cfg.VaultFile = filepath.Join(t.TempDir(), "scenarios.vault")

	store := scenariostore.NewStore(cfg.ScenarioCap)
	v := vault.New(cfg.VaultFile)

	srv := httptest.NewServer(server.New(cfg, store, v, zerolog.Nop()).Router())
	t.Cleanup(srv.Close)

	return &TestServer{
		Server: srv,
		Store:  store,
		Vault:  v,
		t:      t,
	}
}

// Get performs a GET request against the test server.
func (ts *TestServer) Get(path string) *http.Response {
	ts.t.Helper()

	resp, err := http.Get(ts.Server.URL + path)
	if err != nil {
		ts.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// PostJSON performs a POST request with a JSON-encoded body.
func (ts *TestServer) PostJSON(path string, body any) *http.Response {
	ts.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			ts.t.Fatalf("encode body for POST %s: %v", path, err)
		}
	}

	resp, err := http.Post(ts.Server.URL+path, "application/json", &buf)
	if err != nil {
		ts.t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// Delete performs a DELETE request against the test server.
func (ts *TestServer) Delete(path string) *http.Response {
	ts.t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.Server.URL+path, nil)
	if err != nil {
		ts.t.Fatalf("build DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		ts.t.Fatalf("DELETE %s: %v", path, err)
	}
	return resp
}

// DecodeJSON reads and closes the response body, decoding it into v.
func DecodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode response %q: %v", body, err)
	}
}
