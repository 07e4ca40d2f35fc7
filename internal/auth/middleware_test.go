package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// passHandler answers 200 "ok".
var passHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
})

func call(t *testing.T, h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAPIKey_ModeNone_PassesThrough(t *testing.T) {
	h := APIKey("none", "secret")(passHandler)
	// No key sent: should still pass because mode != "apikey".
	if rec := call(t, h, "/api/v1/health", nil); rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestAPIKey_EmptyKey_PassesThrough(t *testing.T) {
	// key="" means auth is not configured → allow all.
	h := APIKey("apikey", "")(passHandler)
	if rec := call(t, h, "/api/v1/health", nil); rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestAPIKey(t *testing.T) {
	h := APIKey("apikey", "supersecret")(passHandler)

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    int
	}{
		{"correct header", "/api/v1/profile", map[string]string{"X-API-Key": "supersecret"}, http.StatusOK},
		{"rapidapi header", "/calculate/bmi", map[string]string{"X-RapidAPI-Key": "supersecret"}, http.StatusOK},
		{"query parameter", "/ws/profile?api_key=supersecret", nil, http.StatusOK},
		{"wrong key", "/api/v1/profile", map[string]string{"X-API-Key": "wrong"}, http.StatusUnauthorized},
		{"missing key", "/api/v1/profile", nil, http.StatusUnauthorized},
		{"prefix of key", "/api/v1/profile", map[string]string{"X-API-Key": "supersecre"}, http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := call(t, h, tc.target, tc.headers)
			if rec.Code != tc.want {
				t.Errorf("status: got %d, want %d", rec.Code, tc.want)
			}
			if tc.want == http.StatusUnauthorized && rec.Body.String() != `{"error":"invalid api key"}` {
				t.Errorf("body: got %q", rec.Body.String())
			}
		})
	}
}
