package doctor

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mdhrk2001/doctor-appointment-cloud/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes attaches the catalog routes. These are public; the group
// passed here must not carry the auth middleware.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/doctors", h.List)
	g.GET("/doctors/:id", h.Get)
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	filter := SearchFilter{
		Specialty: c.QueryParam("specialty"),
		Query:     c.QueryParam("q"),
	}

	items, total, err := h.svc.Search(c.Request().Context(), filter, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching doctors.")
	}
	if items == nil {
		items = []*Doctor{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Doctor not found.")
	}

	d, err := h.svc.Get(c.Request().Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Doctor not found.")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching doctor.")
	}
	return c.JSON(http.StatusOK, d)
}
