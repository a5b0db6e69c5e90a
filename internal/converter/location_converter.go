package converter

import (
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/domain/entity"
)

// LocationToResponse converts a Location entity to LocationResponse DTO
func LocationToResponse(location *entity.Location) *dto.LocationResponse {
	if location == nil {
		return nil
	}

	isActive := true
	if location.IsActive != nil {
		isActive = *location.IsActive
	}

	response := &dto.LocationResponse{
		ID:        location.ID,
		OwnerID:   location.OwnerID,
		Name:      location.Name,
		Address:   location.Address,
		District:  location.District,
		OpenHour:  location.OpenHour,
		CloseHour: location.CloseHour,
		IsActive:  isActive,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}

	if len(location.Courts) > 0 {
		response.Courts = CourtsToResponses(location.Courts)
	}

	return response
}

// LocationsToResponses converts a slice of Location entities to DTOs
func LocationsToResponses(locations []entity.Location) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		resp := LocationToResponse(&locations[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
