package handler

import (
	"log/slog"
	"net/http"

	"clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/response"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PatientHandler holds dependencies for patient-related handlers.
type PatientHandler struct {
	uc     usecase.PatientUsecase
	logger *slog.Logger
}

// NewPatientHandler is the constructor for PatientHandler, injected by Fx.
func NewPatientHandler(uc usecase.PatientUsecase, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing the caller's patients.
func (h *PatientHandler) List(c echo.Context) error {
	actor, err := middleware.CurrentDoctor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	patients, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "Patients retrieved successfully")
}

// Get handles retrieving a single patient record.
func (h *PatientHandler) Get(c echo.Context) error {
	actor, err := middleware.CurrentDoctor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "Patient retrieved successfully")
}

// Create handles creating a new patient record.
func (h *PatientHandler) Create(c echo.Context) error {
	actor, err := middleware.CurrentDoctor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CreatePatientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.Create(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, patient, "Patient created successfully")
}

// Update handles a partial patient record update.
func (h *PatientHandler) Update(c echo.Context) error {
	actor, err := middleware.CurrentDoctor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdatePatientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "Patient updated successfully")
}

// Delete handles permanently removing a patient record.
func (h *PatientHandler) Delete(c echo.Context) error {
	actor, err := middleware.CurrentDoctor(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Patient deleted successfully")
}
