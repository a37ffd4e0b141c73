package doctor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_List_EmptyCatalog(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data == nil {
		t.Error("expected empty array, got null data")
	}
	if resp.Total != 0 {
		t.Errorf("expected total 0, got %d", resp.Total)
	}
}

func TestHandler_List_SpecialtyFilter(t *testing.T) {
	repo := newMockRepo()
	repo.add("Dr. Grace Hopper", "Cardiology")
	repo.add("Dr. Alan Kay", "Dermatology")
	h := NewHandler(NewService(repo))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/doctors?specialty=Cardiology", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data  []*Doctor `json:"data"`
		Total int       `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected 1 result, got total=%d len=%d", resp.Total, len(resp.Data))
	}
	if resp.Data[0].Specialty != "Cardiology" {
		t.Errorf("unexpected specialty: %s", resp.Data[0].Specialty)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()

	for _, id := range []string{"b8a9c6d0-0000-4000-8000-000000000000", "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/api/doctors/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)

		err := h.Get(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusNotFound {
			t.Errorf("id %q: expected 404 HTTPError, got %v", id, err)
		}
	}
}

func TestHandler_Get_Found(t *testing.T) {
	repo := newMockRepo()
	d := repo.add("Dr. Grace Hopper", "Cardiology")
	h := NewHandler(NewService(repo))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/"+d.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(d.ID.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Doctor
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode doctor: %v", err)
	}
	if got.Name != "Dr. Grace Hopper" {
		t.Errorf("unexpected name: %s", got.Name)
	}
}
