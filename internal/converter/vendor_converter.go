package converter

import (
	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/entity"
	"ombaro-backend/internal/domain/repository"
)

// VendorToResponse converts a Vendor entity to VendorResponse DTO
func VendorToResponse(vendor *entity.Vendor) *dto.VendorResponse {
	if vendor == nil {
		return nil
	}

	return &dto.VendorResponse{
		ID:           vendor.ID,
		BusinessName: vendor.BusinessName,
		OwnerName:    vendor.OwnerName,
		Email:        vendor.Email,
		Mobile:       vendor.Mobile,
		Address:      vendor.Address,
		Latitude:     vendor.Latitude,
		Longitude:    vendor.Longitude,
		Rating:       vendor.Rating,
		Status:       string(vendor.Status),
		CreatedAt:    vendor.CreatedAt,
	}
}

// VendorsToResponses converts a slice of Vendor entities to DTOs
func VendorsToResponses(vendors []entity.Vendor) []dto.VendorResponse {
	responses := make([]dto.VendorResponse, len(vendors))
	for i := range vendors {
		resp := VendorToResponse(&vendors[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// NearbyVendorsToResponses converts nearby search rows, carrying distance.
func NearbyVendorsToResponses(vendors []repository.NearbyVendor) []dto.VendorResponse {
	responses := make([]dto.VendorResponse, len(vendors))
	for i := range vendors {
		resp := VendorToResponse(&vendors[i].Vendor)
		if resp != nil {
			distance := vendors[i].DistanceKm
			resp.DistanceKm = &distance
			responses[i] = *resp
		}
	}
	return responses
}

// VendorServiceToResponse converts a VendorService entity to its DTO
func VendorServiceToResponse(service *entity.VendorService) *dto.VendorServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.VendorServiceResponse{
		ID:              service.ID,
		VendorID:        service.VendorID,
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
	}
}

// VendorServicesToResponses converts a slice of VendorService entities to DTOs
func VendorServicesToResponses(services []entity.VendorService) []dto.VendorServiceResponse {
	responses := make([]dto.VendorServiceResponse, len(services))
	for i := range services {
		resp := VendorServiceToResponse(&services[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
