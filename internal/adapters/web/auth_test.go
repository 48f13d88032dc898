package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedTestToken(t *testing.T, secret, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := &jwtClaims{
		UserID:   7,
		Username: "tester",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func TestRequireAuth(t *testing.T) {
	h := &Handler{jwtSecret: "test-secret"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := authFromContext(r.Context())
		if claims == nil {
			t.Error("Expected claims in context")
			return
		}
		if claims.Username != "tester" {
			t.Errorf("Expected username tester, got %q", claims.Username)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	protected := h.RequireAuth(next)

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
	}{
		{"no cookie", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", signedTestToken(t, "other-secret", "staff", time.Hour), http.StatusUnauthorized},
		{"expired token", signedTestToken(t, "test-secret", "staff", -time.Hour), http.StatusUnauthorized},
		{"valid token", signedTestToken(t, "test-secret", "staff", time.Hour), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/shipments", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				var body map[string]any
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("Expected JSON error body: %v", err)
				}
				if body["error"] != "unauthenticated" {
					t.Errorf("Expected error 'unauthenticated', got %v", body["error"])
				}
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	h := &Handler{jwtSecret: "test-secret"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	protected := h.RequireAuth(h.RequireAdmin(next))

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"staff is forbidden", "staff", http.StatusForbidden},
		{"admin passes", "admin", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/products", nil)
			req.AddCookie(&http.Cookie{
				Name:  "auth_token",
				Value: signedTestToken(t, "test-secret", tt.role, time.Hour),
			})
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusForbidden {
				var body map[string]any
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("Expected JSON error body: %v", err)
				}
				if body["error"] != "forbidden - admin only" {
					t.Errorf("Expected admin-only error, got %v", body["error"])
				}
			}
		})
	}
}

func TestAuthTaskDispatch(t *testing.T) {
	h := &Handler{jwtSecret: "test-secret"}

	// Unknown task values on POST /auth are rejected with 405.
	req := httptest.NewRequest(http.MethodPost, "/auth?task=register", nil)
	rec := httptest.NewRecorder()
	h.authPost(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for unknown task, got %d", rec.Code)
	}

	// GET /auth?task=me without a cookie reports a null user, not an error.
	req = httptest.NewRequest(http.MethodGet, "/auth?task=me", nil)
	rec = httptest.NewRecorder()
	h.authGet(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Expected JSON body: %v", err)
	}
	if user, ok := body["user"]; !ok || user != nil {
		t.Errorf("Expected user null, got %v", body["user"])
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	h := &Handler{jwtSecret: "test-secret"}

	req := httptest.NewRequest(http.MethodPost, "/auth?task=logout", nil)
	rec := httptest.NewRecorder()
	h.authPost(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "auth_token" {
		t.Fatalf("Expected an auth_token cookie, got %v", cookies)
	}
	if cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Errorf("Expected cleared cookie, got MaxAge=%d Value=%q", cookies[0].MaxAge, cookies[0].Value)
	}
}
