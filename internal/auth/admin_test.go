package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAdminGate(t *testing.T) {
	tests := []struct {
		name            string
		secret          string
		allowSameOrigin bool
		key             string
		referer         string
		wantStatus      int
		wantVia         string
	}{
		{name: "matching key", secret: "s3cret", key: "s3cret", wantStatus: http.StatusOK, wantVia: viaKey},
		{name: "wrong key", secret: "s3cret", key: "nope", wantStatus: http.StatusUnauthorized},
		{name: "no credentials", secret: "s3cret", wantStatus: http.StatusUnauthorized},
		{name: "empty secret never matches", secret: "", key: "", wantStatus: http.StatusUnauthorized},
		{name: "same origin referer", secret: "s3cret", allowSameOrigin: true, referer: "http://example.com/admin", wantStatus: http.StatusOK, wantVia: viaSameOrigin},
		{name: "foreign referer", secret: "s3cret", allowSameOrigin: true, referer: "http://evil.test/admin", wantStatus: http.StatusUnauthorized},
		{name: "host only as substring", secret: "s3cret", allowSameOrigin: true, referer: "http://example.com.evil.test/", wantStatus: http.StatusUnauthorized},
		{name: "same origin disabled", secret: "s3cret", allowSameOrigin: false, referer: "http://example.com/admin", wantStatus: http.StatusUnauthorized},
		{name: "garbage referer", secret: "s3cret", allowSameOrigin: true, referer: "::not a url", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewAdminGate(tt.secret, tt.allowSameOrigin, zap.NewNop())

			var gotVia string
			called := false
			h := gate.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotVia, _ = AdminVia(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/bookmakers", nil)
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.False(t, called)
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
				return
			}
			assert.True(t, called)
			assert.Equal(t, tt.wantVia, gotVia)
		})
	}
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://localhost:5000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookmakers", nil)
		req.Header.Set("Origin", "http://localhost:5000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:5000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), AdminKeyHeader)
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookmakers", nil)
		req.Header.Set("Origin", "http://evil.test")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/bookmakers", nil)
		req.Header.Set("Origin", "http://localhost:5000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
