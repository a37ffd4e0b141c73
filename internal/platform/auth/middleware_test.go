package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims Claims, key []byte) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func runMiddleware(t *testing.T, authHeader string) (int, string, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/my-appointments", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUID string
	mw := Middleware(Config{SigningKey: testKey})
	err := mw(func(c echo.Context) error {
		gotUID = UserIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})(c)
	return rec.Code, gotUID, err
}

func TestMiddlewareMissingHeader(t *testing.T) {
	_, _, err := runMiddleware(t, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	_, _, err := runMiddleware(t, "Token abc123")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestMiddlewareInvalidSignature(t *testing.T) {
	tok := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "patient-1"},
	}, []byte("wrong-key"))
	_, _, err := runMiddleware(t, "Bearer "+tok)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	tok := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "patient-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testKey)
	_, _, err := runMiddleware(t, "Bearer "+tok)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestMiddlewareMissingSubject(t *testing.T) {
	tok := signToken(t, Claims{}, testKey)
	_, _, err := runMiddleware(t, "Bearer "+tok)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 HTTPError, got %v", err)
	}
}

func TestMiddlewareValidToken(t *testing.T) {
	tok := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "patient-1"},
	}, testKey)
	code, uid, err := runMiddleware(t, "Bearer "+tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
	if uid != "patient-1" {
		t.Errorf("expected caller identity patient-1, got %q", uid)
	}
}

func TestMiddlewareBearerCaseInsensitive(t *testing.T) {
	tok := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "patient-1"},
	}, testKey)
	code, _, err := runMiddleware(t, "bearer "+tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
}
