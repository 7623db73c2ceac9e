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

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// CreateBooking creates a booking awaiting payment
// @Summary Create booking
// @Description Create a booking for selected vendor services, priced server-side
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVendorNotFound:
			response.NotFound(w, "Vendor not found")
		case usecase.ErrVendorNotActive:
			response.Error(w, http.StatusConflict, "Vendor is not accepting bookings", nil)
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "One or more services not found")
		case usecase.ErrBookingDatePast:
			response.Error(w, http.StatusBadRequest, "Cannot book a past date", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// GetMyBookings lists the caller's bookings
// @Summary My bookings
// @Description List all bookings for the logged-in customer
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /bookings [get]
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
		return
	}

	bookings, err := h.bookingUsecase.GetMyBookings(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// GetBooking returns one of the caller's bookings
// @Summary Get booking
// @Description Get a booking by ID
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.bookingUsecase.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		h.writeBookingError(w, err, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// ConfirmPayment records payment and confirms the booking
// @Summary Confirm payment
// @Description Record the payment capture; the booking enters the service lifecycle
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ConfirmPaymentRequest true "Confirm Payment Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/payment [post]
func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
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

	var req dto.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.ConfirmPayment(r.Context(), userID, bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPaymentAlreadyCaptured:
			response.Error(w, http.StatusConflict, "Payment has already been captured", nil)
		default:
			h.writeBookingError(w, err, "Failed to confirm payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment confirmed successfully", booking)
}

// CancelBooking cancels an owned booking
// @Summary Cancel booking
// @Description Cancel a booking before the service starts
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
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

	if err := h.bookingUsecase.CancelBooking(r.Context(), userID, bookingID); err != nil {
		switch err {
		case usecase.ErrBookingAlreadyCancelled:
			response.Error(w, http.StatusConflict, "Booking is already cancelled", nil)
		case usecase.ErrBookingNotCancellable:
			response.Error(w, http.StatusConflict, "Booking can no longer be cancelled", nil)
		default:
			h.writeBookingError(w, err, "Failed to cancel booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}

// RescheduleBooking changes the booking date and time
// @Summary Reschedule booking
// @Description Change the booking's date and time before the service starts
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RescheduleBookingRequest true "Reschedule Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/reschedule [put]
func (h *BookingHandler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
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

	var req dto.RescheduleBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.RescheduleBooking(r.Context(), userID, bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingAlreadyCancelled:
			response.Error(w, http.StatusConflict, "Booking is already cancelled", nil)
		case usecase.ErrBookingNotReschedulable:
			response.Error(w, http.StatusConflict, "Booking can no longer be rescheduled", nil)
		case usecase.ErrBookingDatePast:
			response.Error(w, http.StatusBadRequest, "Cannot book a past date", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			h.writeBookingError(w, err, "Failed to reschedule booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking rescheduled successfully", booking)
}

func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrBookingNotFound:
		response.NotFound(w, "Booking not found")
	case usecase.ErrBookingNotOwned:
		response.Forbidden(w, "Booking does not belong to you")
	default:
		response.InternalServerError(w, fallback)
	}
}
