package handler

import (
	"log/slog"
	"net/http"

	"clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/response"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DoctorHandler holds dependencies for doctor-related handlers.
type DoctorHandler struct {
	uc     usecase.DoctorUsecase
	logger *slog.Logger
}

// NewDoctorHandler is the constructor for DoctorHandler, injected by Fx.
func NewDoctorHandler(uc usecase.DoctorUsecase, logger *slog.Logger) *DoctorHandler {
	return &DoctorHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing all active doctors.
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doctors, "Doctors retrieved successfully")
}

// Get handles retrieving a single doctor by ID.
func (h *DoctorHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	doctor, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doctor, "Doctor retrieved successfully")
}

// Update handles a partial doctor profile update.
func (h *DoctorHandler) Update(c echo.Context) error {
	actor, err := middleware.CurrentDoctor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateDoctorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid doctor update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	doctor, err := h.uc.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doctor, "Doctor updated successfully")
}

// Deactivate handles a soft delete of a doctor account.
func (h *DoctorHandler) Deactivate(c echo.Context) error {
	actor, err := middleware.CurrentDoctor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Deactivate(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Doctor deactivated successfully")
}

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}
