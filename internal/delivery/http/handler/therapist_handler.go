package handler

import (
	"encoding/json"
	"net/http"

	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/usecase"
	"ombaro-backend/pkg/response"
	"ombaro-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TherapistHandler struct {
	therapistUsecase usecase.TherapistUsecase
	validator        *validator.CustomValidator
}

func NewTherapistHandler(therapistUsecase usecase.TherapistUsecase, validator *validator.CustomValidator) *TherapistHandler {
	return &TherapistHandler{
		therapistUsecase: therapistUsecase,
		validator:        validator,
	}
}

// GetTherapistsByVendor lists a vendor's therapists
// @Summary Vendor therapists
// @Description List a vendor's active therapists
// @Tags Therapists
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} response.Response
// @Router /vendors/{id}/therapists [get]
func (h *TherapistHandler) GetTherapistsByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID", nil)
		return
	}

	therapists, err := h.therapistUsecase.GetTherapistsByVendor(r.Context(), vendorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get therapists")
		return
	}

	response.Success(w, http.StatusOK, "Therapists retrieved successfully", therapists)
}

// GetAvailableTherapists lists a vendor's available therapists
// @Summary Available therapists
// @Description List a vendor's currently available therapists
// @Tags Therapists
// @Security BearerAuth
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} response.Response
// @Router /vendors/{id}/therapists/available [get]
func (h *TherapistHandler) GetAvailableTherapists(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID", nil)
		return
	}

	therapists, err := h.therapistUsecase.GetAvailableTherapists(r.Context(), vendorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get therapists")
		return
	}

	response.Success(w, http.StatusOK, "Therapists retrieved successfully", therapists)
}

// GetTherapist returns one therapist
// @Summary Get therapist
// @Description Get a therapist by ID
// @Tags Therapists
// @Produce json
// @Param id path string true "Therapist ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /therapists/{id} [get]
func (h *TherapistHandler) GetTherapist(w http.ResponseWriter, r *http.Request) {
	therapistID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid therapist ID", nil)
		return
	}

	therapist, err := h.therapistUsecase.GetTherapist(r.Context(), therapistID)
	if err != nil {
		switch err {
		case usecase.ErrTherapistNotFound:
			response.NotFound(w, "Therapist not found")
		default:
			response.InternalServerError(w, "Failed to get therapist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Therapist retrieved successfully", therapist)
}

// UpdateLocation records a therapist position report
// @Summary Update location
// @Description Persist a therapist position report and mirror it for live tracking
// @Tags Therapists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Param request body dto.UpdateLocationRequest true "Location"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /therapists/{id}/location [put]
func (h *TherapistHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	therapistID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid therapist ID", nil)
		return
	}

	var req dto.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.therapistUsecase.UpdateLocation(r.Context(), therapistID, &req); err != nil {
		switch err {
		case usecase.ErrTherapistNotFound:
			response.NotFound(w, "Therapist not found")
		default:
			response.InternalServerError(w, "Failed to update location")
		}
		return
	}

	response.Success(w, http.StatusOK, "Location updated successfully", nil)
}

// UpdateAvailability changes a therapist's availability status
// @Summary Update availability
// @Description Set a therapist's availability to available, busy or offline
// @Tags Therapists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Param request body dto.UpdateAvailabilityRequest true "Availability"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /therapists/{id}/availability [put]
func (h *TherapistHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	therapistID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid therapist ID", nil)
		return
	}

	var req dto.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.therapistUsecase.UpdateAvailability(r.Context(), therapistID, &req); err != nil {
		switch err {
		case usecase.ErrTherapistNotFound:
			response.NotFound(w, "Therapist not found")
		default:
			response.InternalServerError(w, "Failed to update availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", nil)
}
