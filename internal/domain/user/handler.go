package user

import (
	"errors"
	"net/http"

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
	api.GET("/my-profile", h.MyProfile)
	api.POST("/register-profile", h.RegisterProfile)
}

func (h *Handler) MyProfile(c echo.Context) error {
	callerID := auth.UserIDFromContext(c.Request().Context())
	u, err := h.svc.Profile(c.Request().Context(), callerID)
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found.")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching profile.")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) RegisterProfile(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required profile information.")
	}

	callerID := auth.UserIDFromContext(c.Request().Context())
	u, err := h.svc.Register(c.Request().Context(), callerID, req)
	switch {
	case errors.Is(err, ErrMissingFields):
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required profile information.")
	case errors.Is(err, ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "User profile already exists.")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating profile.")
	}

	return c.JSON(http.StatusCreated, u)
}
