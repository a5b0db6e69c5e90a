package converter

import (
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/domain/entity"
)

// CourtToResponse converts a Court entity to CourtResponse DTO
func CourtToResponse(court *entity.Court) *dto.CourtResponse {
	if court == nil {
		return nil
	}

	isActive := true
	if court.IsActive != nil {
		isActive = *court.IsActive
	}

	return &dto.CourtResponse{
		ID:           court.ID,
		LocationID:   court.LocationID,
		Name:         court.Name,
		PricePerHour: court.PricePerHour.Truncate(0).String(),
		IsActive:     isActive,
		CreatedAt:    court.CreatedAt,
		UpdatedAt:    court.UpdatedAt,
	}
}

// CourtsToResponses converts a slice of Court entities to DTOs
func CourtsToResponses(courts []entity.Court) []dto.CourtResponse {
	responses := make([]dto.CourtResponse, len(courts))
	for i := range courts {
		resp := CourtToResponse(&courts[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
