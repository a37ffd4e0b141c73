package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mdhrk2001/doctor-appointment-cloud/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	return NewHandler(NewService(newMockRepo())), echo.New()
}

func asCaller(req *http.Request, callerID string) *http.Request {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, callerID)
	return req.WithContext(ctx)
}

func TestHandler_MyProfile_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/my-profile", nil), "patient-a")
	rec := httptest.NewRecorder()

	err := h.MyProfile(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
	if he.Message != "User profile not found." {
		t.Errorf("unexpected message: %v", he.Message)
	}
}

func TestHandler_RegisterThenFetchProfile(t *testing.T) {
	h, e := newTestHandler()

	body := `{"name":"Ada","email":"ada@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register-profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = asCaller(req, "patient-a")
	rec := httptest.NewRecorder()
	if err := h.RegisterProfile(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	req = asCaller(httptest.NewRequest(http.MethodGet, "/api/my-profile", nil), "patient-a")
	rec = httptest.NewRecorder()
	if err := h.MyProfile(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var u map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if u["uid"] != "patient-a" {
		t.Errorf("expected uid patient-a, got %v", u["uid"])
	}
	if u["role"] != "patient" {
		t.Errorf("expected role patient, got %v", u["role"])
	}
}

func TestHandler_RegisterProfile_Duplicate(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Ada","email":"ada@example.com"}`

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/register-profile", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req = asCaller(req, "patient-a")
		rec := httptest.NewRecorder()
		err := h.RegisterProfile(e.NewContext(req, rec))
		if i == 0 && err != nil {
			t.Fatalf("first register failed: %v", err)
		}
		if i == 1 {
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusConflict {
				t.Fatalf("expected 409 on duplicate, got %v", err)
			}
		}
	}
}

func TestHandler_RegisterProfile_MissingFields(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/register-profile", strings.NewReader(`{"name":"Ada"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = asCaller(req, "patient-a")
	rec := httptest.NewRecorder()

	err := h.RegisterProfile(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
