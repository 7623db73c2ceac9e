package handler

import (
	"encoding/json"
	"net/http"

	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/delivery/http/middleware"
	"ombaro-backend/internal/usecase"
	"ombaro-backend/pkg/response"
	"ombaro-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TrackingHandler struct {
	trackingUsecase usecase.TrackingUsecase
	validator       *validator.CustomValidator
}

func NewTrackingHandler(trackingUsecase usecase.TrackingUsecase, validator *validator.CustomValidator) *TrackingHandler {
	return &TrackingHandler{
		trackingUsecase: trackingUsecase,
		validator:       validator,
	}
}

// GetTracking returns the live tracking view for a booking
// @Summary Track booking
// @Description Current status, lifecycle timeline, and live therapist position
// @Tags Tracking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id}/tracking [get]
func (h *TrackingHandler) GetTracking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	tracking, err := h.trackingUsecase.GetTracking(r.Context(), userID, bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get tracking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Tracking retrieved successfully", tracking)
}

// AdvanceBooking moves a booking one lifecycle step forward
// @Summary Advance booking
// @Description Move the booking to the next lifecycle state
// @Tags Tracking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/advance [post]
func (h *TrackingHandler) AdvanceBooking(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	info, err := h.trackingUsecase.AdvanceBooking(r.Context(), operatorID, bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotInLifecycle:
			response.Error(w, http.StatusConflict, "Booking is not in the service lifecycle", nil)
		case usecase.ErrBookingCompleted:
			response.Error(w, http.StatusConflict, "Booking is already completed", nil)
		case usecase.ErrAssignmentRequired:
			response.Error(w, http.StatusConflict, "Booking must have a therapist before it can advance", nil)
		case usecase.ErrTransitionConflict:
			response.Error(w, http.StatusConflict, "Booking status changed, retry", nil)
		default:
			response.InternalServerError(w, "Failed to advance booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking advanced successfully", info)
}

// AssignTherapist performs the confirmed to therapist-assigned step
// @Summary Assign therapist
// @Description Assign an available therapist of the booking's vendor
// @Tags Tracking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AssignTherapistRequest true "Assign Therapist Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/assign [post]
func (h *TrackingHandler) AssignTherapist(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	// body is optional: empty means pick from the available pool
	var req dto.AssignTherapistRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
		if err := h.validator.Validate(&req); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	booking, err := h.trackingUsecase.AssignTherapist(r.Context(), operatorID, bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotInLifecycle:
			response.Error(w, http.StatusConflict, "Booking is not awaiting assignment", nil)
		case usecase.ErrTherapistNotFound:
			response.NotFound(w, "Therapist not found")
		case usecase.ErrTherapistWrongVendor:
			response.Error(w, http.StatusConflict, "Therapist does not belong to the booking's vendor", nil)
		case usecase.ErrNoTherapistAvailable:
			response.Error(w, http.StatusConflict, "No therapist available for this vendor", nil)
		case usecase.ErrTransitionConflict:
			response.Error(w, http.StatusConflict, "Booking status changed, retry", nil)
		default:
			response.InternalServerError(w, "Failed to assign therapist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Therapist assigned successfully", booking)
}
