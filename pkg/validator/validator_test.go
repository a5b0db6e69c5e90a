package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email      string `validate:"required,email"`
	Name       string `validate:"required,min=2,max=10"`
	Percent    int    `validate:"gte=1,lte=100"`
	StartHours []int  `validate:"required,min=1,dive,gte=0,lte=23"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:      "player@example.com",
		Name:       "Minh",
		Percent:    10,
		StartHours: []int{6, 7},
	})
	assert.NoError(t, err)
}

func TestValidateFormatsErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:      "not-an-email",
		Name:       "A",
		Percent:    150,
		StartHours: []int{},
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Name must be at least 2 characters", formatted["Name"])
	assert.Equal(t, "Percent must be less than or equal to 100", formatted["Percent"])
	assert.Contains(t, formatted, "StartHours")
}

func TestValidateElementRange(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:      "player@example.com",
		Name:       "Minh",
		Percent:    10,
		StartHours: []int{6, 25},
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.NotEmpty(t, formatted)
}
