package appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mdhrk2001/doctor-appointment-cloud/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/my-appointments", h.ListMyAppointments)
	api.POST("/book-appointment", h.BookAppointment)
	api.DELETE("/appointment/:id", h.CancelAppointment)
}

// bookingResponse is the 201 body the client expects.
type bookingResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

func (h *Handler) BookAppointment(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required booking information.")
	}

	callerID := auth.UserIDFromContext(c.Request().Context())
	a, err := h.svc.Book(c.Request().Context(), callerID, req)
	switch {
	case errors.Is(err, ErrMissingFields):
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required booking information.")
	case errors.Is(err, ErrInvalidDateTime):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date or time format.")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating appointment")
	}

	return c.JSON(http.StatusCreated, bookingResponse{
		ID:      a.ID,
		Message: "Appointment created successfully",
	})
}

func (h *Handler) ListMyAppointments(c echo.Context) error {
	callerID := auth.UserIDFromContext(c.Request().Context())
	items, err := h.svc.ListForPatient(c.Request().Context(), callerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching appointments")
	}
	if items == nil {
		// Empty array, not an error
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CancelAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id cannot match any record
		return echo.NewHTTPError(http.StatusNotFound, "Appointment not found.")
	}

	callerID := auth.UserIDFromContext(c.Request().Context())
	err = h.svc.Cancel(c.Request().Context(), callerID, id)
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Appointment not found.")
	case errors.Is(err, ErrNotOwner):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden: You cannot cancel this appointment.")
	case errors.Is(err, ErrPastAppointment):
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot cancel an appointment that is already in the past.")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Error canceling appointment.")
	}

	return c.String(http.StatusOK, "Appointment canceled successfully.")
}
