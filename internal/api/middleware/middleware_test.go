package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Len(t, seen, 36)

	assert.Empty(t, GetRequestID(httptest.NewRequest("GET", "/", nil)))
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CHIMP_INTERNAL", body["code"])
}

func TestRoutePattern(t *testing.T) {
	var route string
	r := chi.NewRouter()
	r.Get("/v1/accounts/{account_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
		route = routePattern(r)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/v1/accounts/abc", nil))
	assert.Equal(t, "/v1/accounts/{account_id}", route)

	assert.Equal(t, "unmatched", routePattern(httptest.NewRequest("GET", "/nowhere", nil)))
}
