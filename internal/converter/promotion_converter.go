package converter

import (
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/domain/entity"
)

// PromotionToResponse converts a Promotion entity to PromotionResponse DTO
func PromotionToResponse(promotion *entity.Promotion) *dto.PromotionResponse {
	if promotion == nil {
		return nil
	}

	isActive := true
	if promotion.IsActive != nil {
		isActive = *promotion.IsActive
	}

	return &dto.PromotionResponse{
		ID:              promotion.ID,
		LocationID:      promotion.LocationID,
		Code:            promotion.Code,
		Description:     promotion.Description,
		DiscountPercent: promotion.DiscountPercent,
		StartDate:       promotion.StartDate.Format("2006-01-02"),
		EndDate:         promotion.EndDate.Format("2006-01-02"),
		IsActive:        isActive,
		CreatedAt:       promotion.CreatedAt,
		UpdatedAt:       promotion.UpdatedAt,
	}
}

// PromotionsToResponses converts a slice of Promotion entities to DTOs
func PromotionsToResponses(promotions []entity.Promotion) []dto.PromotionResponse {
	responses := make([]dto.PromotionResponse, len(promotions))
	for i := range promotions {
		resp := PromotionToResponse(&promotions[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
