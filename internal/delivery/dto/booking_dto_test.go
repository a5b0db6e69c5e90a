package dto

import (
	"testing"

	"court-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateBookingRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CourtID:     uuid.New(),
		BookingDate: "2026-01-05",
		StartHours:  []int{18, 19, 20},
	}
}

func TestCreateBookingRequestValid(t *testing.T) {
	cv := validator.NewValidator()

	req := validCreateBookingRequest()
	assert.NoError(t, cv.Validate(&req))
}

// Each requested hour is charged once, so a request repeating an hour must be
// rejected before it reaches pricing.
func TestCreateBookingRequestRejectsDuplicateHours(t *testing.T) {
	cv := validator.NewValidator()

	req := validCreateBookingRequest()
	req.StartHours = []int{19, 19}

	err := cv.Validate(&req)
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "StartHours must not contain duplicate values", formatted["StartHours"])
}

func TestCreateBookingRequestRejectsEmptyHours(t *testing.T) {
	cv := validator.NewValidator()

	req := validCreateBookingRequest()
	req.StartHours = []int{}

	assert.Error(t, cv.Validate(&req))
}
