package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jphuse/nuskell"
	httpadapter "github.com/jphuse/nuskell/pkg/adapters/http"
	"github.com/jphuse/nuskell/pkg/adapters/memory"
	"github.com/jphuse/nuskell/pkg/observability"
)

func newHandler(t *testing.T) nethttp.Handler {
	t.Helper()
	return httpadapter.NewHandler(nuskell.New(), memory.NewStore(), observability.NewMetrics())
}

func post(t *testing.T, h nethttp.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(nethttp.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCompile_Success(t *testing.T) {
	h := newHandler(t)

	rec := post(t, h, "/compile", httpadapter.CompileRequest{CRN: "A + B -> C"})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var resp httpadapter.CompileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.System)
	assert.NotEmpty(t, resp.System.Complexes)
	assert.Len(t, resp.System.Species, 3)
}

func TestCompile_ParseError(t *testing.T) {
	h := newHandler(t)
	rec := post(t, h, "/compile", httpadapter.CompileRequest{CRN: "A -> -> B"})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
}

func TestCompile_InvalidBody(t *testing.T) {
	h := newHandler(t)
	req := httptest.NewRequest(nethttp.MethodPost, "/compile", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestSystems_Lifecycle(t *testing.T) {
	h := newHandler(t)

	rec := post(t, h, "/systems", httpadapter.CompileRequest{ID: "demo", CRN: "A -> B"})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())

	req := httptest.NewRequest(nethttp.MethodGet, "/systems/demo", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	req = httptest.NewRequest(nethttp.MethodGet, "/systems", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "demo")

	req = httptest.NewRequest(nethttp.MethodDelete, "/systems/demo", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusNoContent, rec.Code)

	req = httptest.NewRequest(nethttp.MethodGet, "/systems/demo", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestSystems_GeneratedID(t *testing.T) {
	h := newHandler(t)
	rec := post(t, h, "/systems", httpadapter.CompileRequest{CRN: "A -> B"})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())

	var resp httpadapter.CompileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID, "server assigns an id when the request omits one")
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nuskell")

	// Drive one compile so the counters exist, then scrape.
	post(t, h, "/compile", httpadapter.CompileRequest{CRN: "A -> B"})

	req = httptest.NewRequest(nethttp.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nuskell_compilations_total")
}
