package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/trayweave/cableroute/api"
	"github.com/trayweave/cableroute/routing"
)

func TestHandleRouteGrid_HappyPath(t *testing.T) {
	srv := api.NewServer(routing.NewEngine(zaptest.NewLogger(t)), zaptest.NewLogger(t))

	body := `{
		"width": 5, "height": 1,
		"machines": {"A": {"x": 0, "y": 0}, "B": {"x": 4, "y": 0}},
		"cables": [{"label": "C1", "source": "A", "target": "B"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/routing", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Contains(t, decoded, "cable_routes")
	assert.Contains(t, decoded, "debug_info")
}

func TestHandleRouteGrid_MalformedBodyIsBadRequest(t *testing.T) {
	srv := api.NewServer(routing.NewEngine(zaptest.NewLogger(t)), zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodPost, "/routing", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateCableLength_EchoesIdentifier(t *testing.T) {
	srv := api.NewServer(routing.NewEngine(zaptest.NewLogger(t)), zaptest.NewLogger(t))

	body := `{"cable_identifier": "C1", "length": "12,5m"}`
	req := httptest.NewRequest(http.MethodPost, "/cables/length", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var decoded struct {
		Success         bool   `json:"success"`
		CableIdentifier string `json:"cable_identifier"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.True(t, decoded.Success)
	assert.Equal(t, "C1", decoded.CableIdentifier)
}
