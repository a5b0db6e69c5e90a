package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePromotionRequest struct {
	LocationID      uuid.UUID `json:"location_id" validate:"required"`
	Code            string    `json:"code" validate:"required,min=3,max=50"`
	Description     string    `json:"description" validate:"omitempty"`
	DiscountPercent int       `json:"discount_percent" validate:"required,gte=1,lte=100"`
	StartDate       string    `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate         string    `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
}

type UpdatePromotionRequest struct {
	Description     string `json:"description" validate:"omitempty"`
	DiscountPercent *int   `json:"discount_percent" validate:"omitempty,gte=1,lte=100"`
	StartDate       string `json:"start_date" validate:"omitempty"` // Format: YYYY-MM-DD
	EndDate         string `json:"end_date" validate:"omitempty"`   // Format: YYYY-MM-DD
	IsActive        *bool  `json:"is_active"`
}

// Response DTOs

type PromotionResponse struct {
	ID              uuid.UUID `json:"id"`
	LocationID      uuid.UUID `json:"location_id"`
	Code            string    `json:"code"`
	Description     string    `json:"description,omitempty"`
	DiscountPercent int       `json:"discount_percent"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
	Total      int                 `json:"total"`
}
