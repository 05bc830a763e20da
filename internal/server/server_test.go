package server_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/internal/testutil"
)

func TestHealth(t *testing.T) {
	ts := testutil.NewServer(t)

	resp := ts.Get("/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status  string `json:"status"`
		Version struct {
			Version string `json:"version"`
		} `json:"version"`
	}
	testutil.DecodeJSON(t, resp, &body)

	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Version.Version)
}

func TestUnknownRoute(t *testing.T) {
	ts := testutil.NewServer(t)

	resp := ts.Get("/api/nope")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts := testutil.NewServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.Server.URL+"/api/calculate", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
