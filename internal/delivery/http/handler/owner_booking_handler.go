package handler

import (
	"encoding/json"
	"net/http"

	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/internal/usecase"
	"court-booking-backend/pkg/response"
	"court-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type OwnerBookingHandler struct {
	bookingUsecase usecase.OwnerBookingUsecase
	validator      *validator.CustomValidator
}

func NewOwnerBookingHandler(bookingUsecase usecase.OwnerBookingUsecase, validator *validator.CustomValidator) *OwnerBookingHandler {
	return &OwnerBookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// GetLocationBookings lists bookings for one of the owner's locations
// @Summary List bookings of a location
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param location_id query string true "Location ID"
// @Param court_id query string false "Filter by court"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /owner/bookings [get]
func (h *OwnerBookingHandler) GetLocationBookings(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(r.URL.Query().Get("location_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Query parameter 'location_id' is required", nil)
		return
	}

	filter := entity.BookingFilter{
		LocationID: locationID,
		Date:       r.URL.Query().Get("date"),
	}
	if courtID := r.URL.Query().Get("court_id"); courtID != "" {
		id, err := uuid.Parse(courtID)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid court ID", nil)
			return
		}
		filter.CourtID = id
	}

	bookings, err := h.bookingUsecase.GetLocationBookings(r.Context(), filter)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationNotOwned:
			response.Forbidden(w, "Location does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// UpdateBookingStatus confirms or rejects a pending booking
// @Summary Confirm or reject a booking
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /owner/bookings/{id}/status [put]
func (h *OwnerBookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateBookingStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrLocationNotOwned:
			response.Forbidden(w, "Booking is not on your location")
		case usecase.ErrBookingNotPending:
			response.Error(w, http.StatusConflict, "Booking is no longer pending", nil)
		default:
			response.InternalServerError(w, "Failed to update booking status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking status updated successfully", booking)
}
