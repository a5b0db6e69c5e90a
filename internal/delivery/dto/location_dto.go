package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLocationRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Address   string `json:"address" validate:"required"`
	District  string `json:"district" validate:"omitempty,max=100"`
	OpenHour  int    `json:"open_hour" validate:"gte=0,lte=23"`
	CloseHour int    `json:"close_hour" validate:"gte=1,lte=26"`
}

type UpdateLocationRequest struct {
	Name      string `json:"name" validate:"omitempty,min=2,max=255"`
	Address   string `json:"address" validate:"omitempty"`
	District  string `json:"district" validate:"omitempty,max=100"`
	OpenHour  *int   `json:"open_hour" validate:"omitempty,gte=0,lte=23"`
	CloseHour *int   `json:"close_hour" validate:"omitempty,gte=1,lte=26"`
	IsActive  *bool  `json:"is_active"`
}

// Response DTOs

type LocationResponse struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	District  string          `json:"district,omitempty"`
	OpenHour  int             `json:"open_hour"`
	CloseHour int             `json:"close_hour"`
	IsActive  bool            `json:"is_active"`
	Courts    []CourtResponse `json:"courts,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int                `json:"total"`
}
