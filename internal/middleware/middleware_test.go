package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-platform/backend/internal/lib/sl"
)

type fakeVerifier struct {
	tokens map[string]*auth.Token
}

func (f fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if tok, ok := f.tokens[idToken]; ok {
		return tok, nil
	}
	return nil, errors.New("bad token")
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func TestAdminChain(t *testing.T) {
	v := fakeVerifier{tokens: map[string]*auth.Token{
		"admin-token":  {UID: "u1", Claims: map[string]any{"admin": true, "email": "boss@fit.test"}},
		"member-token": {UID: "u2", Claims: map[string]any{"role": "member"}},
	}}
	h := WithAuth(v, sl.Discard())(RequireAdmin(okHandler))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"member", "Bearer member-token", http.StatusForbidden},
		{"admin", "Bearer admin-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/balance", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(map[string]any{"admin": true}))
	assert.True(t, IsAdmin(map[string]any{"role": "admin"}))
	assert.True(t, IsAdmin(map[string]any{"roles": map[string]any{"admin": true}}))
	assert.True(t, IsAdmin(map[string]any{"roles": []any{"coach", "admin"}}))
	assert.False(t, IsAdmin(map[string]any{"roles": []any{"coach"}}))
	assert.False(t, IsAdmin(map[string]any{"admin": "yes"}))
	assert.False(t, IsAdmin(nil))
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(0.001, 2, sl.Discard())(okHandler)

	codes := []int{}
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/forum-post", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	m := NewMetrics()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/trainers/{id}", okHandler)
	r.Handle("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trainers/abc", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `http_requests_total{method="GET",route="/trainers/{id}",status="200"} 1`))
}
