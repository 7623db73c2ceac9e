package converter

import (
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/entity"
)

// TherapistToResponse converts a Therapist entity to TherapistResponse DTO
func TherapistToResponse(therapist *entity.Therapist) *dto.TherapistResponse {
	if therapist == nil {
		return nil
	}

	return &dto.TherapistResponse{
		ID:                 therapist.ID,
		VendorID:           therapist.VendorID,
		Name:               therapist.Name,
		Mobile:             therapist.Mobile,
		Specialization:     therapist.Specialization,
		ExperienceYears:    therapist.ExperienceYears,
		Rating:             therapist.Rating,
		AvailabilityStatus: string(therapist.AvailabilityStatus),
		CreatedAt:          therapist.CreatedAt,
	}
}

// TherapistsToResponses converts a slice of Therapist entities to DTOs
func TherapistsToResponses(therapists []entity.Therapist) []dto.TherapistResponse {
	responses := make([]dto.TherapistResponse, len(therapists))
	for i := range therapists {
		resp := TherapistToResponse(&therapists[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
