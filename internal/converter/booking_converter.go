package converter

import (
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	items := make([]dto.BookingItemResponse, len(booking.Items))
	for i, item := range booking.Items {
		items[i] = dto.BookingItemResponse{
			ServiceID: item.ServiceID,
			Name:      item.Name,
			Price:     item.Price,
		}
	}

	response := &dto.BookingResponse{
		ID:          booking.ID,
		BookingCode: booking.BookingCode,
		CustomerID:  booking.CustomerID,
		VendorID:    booking.VendorID,
		TherapistID: booking.TherapistID,
		BookingDate: booking.BookingDate.Format("2006-01-02"),
		BookingTime: booking.BookingTime,
		Address:     booking.Address,
		Items:       items,
		Quote: dto.QuoteResponse{
			Subtotal:      booking.Subtotal,
			ServiceCharge: booking.ServiceCharge,
			GST:           booking.GST,
			TotalAmount:   booking.TotalAmount,
		},
		Status:        string(booking.Status),
		PaymentStatus: string(booking.PaymentStatus),
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}

	// Include vendor/therapist info if preloaded
	if booking.Vendor.ID != uuid.Nil {
		response.Vendor = VendorToResponse(&booking.Vendor)
	}
	if booking.Therapist != nil && booking.Therapist.ID != uuid.Nil {
		response.Therapist = TherapistToResponse(booking.Therapist)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp := BookingToResponse(&bookings[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// StatusToInfoResponse projects a lifecycle state to its display form.
func StatusToInfoResponse(status entity.BookingStatus) dto.StatusInfoResponse {
	info := status.Presentation()
	return dto.StatusInfoResponse{
		Status:           string(status),
		Title:            info.Title,
		Description:      info.Description,
		Icon:             info.Icon,
		Color:            info.Color,
		EstimatedArrival: info.EstimatedArrival,
	}
}

// LifecycleTimeline returns the display projection of the full ordered
// lifecycle, for the tracking screen's progress list.
func LifecycleTimeline() []dto.StatusInfoResponse {
	states := entity.LifecycleStates()
	out := make([]dto.StatusInfoResponse, len(states))
	for i, s := range states {
		out[i] = StatusToInfoResponse(s)
	}
	return out
}
