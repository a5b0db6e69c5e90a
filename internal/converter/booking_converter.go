package converter

import (
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/internal/schedule"
)

// BookingToProjection converts a stored booking into the read-only
// projection the scheduling core operates on. The raw status passes through
// NormalizeStatus so the alternate cancellation spelling never reaches the
// classifier.
func BookingToProjection(booking *entity.Booking) schedule.Booking {
	return schedule.Booking{
		ID:              booking.ID.String(),
		CourtID:         booking.CourtID.String(),
		CourtName:       booking.CourtName,
		LocationName:    booking.LocationName,
		LocationAddress: booking.LocationAddress,
		PlayerName:      booking.PlayerName,
		PlayerPhone:     booking.PlayerPhone,
		Date:            booking.BookingDate.Format("2006-01-02"),
		Hours:           booking.StartHours,
		Status:          entity.NormalizeStatus(string(booking.Status)),
		Price:           booking.TotalPrice,
	}
}

// BookingsToProjections converts a slice of stored bookings into projections
func BookingsToProjections(bookings []entity.Booking) []schedule.Booking {
	projections := make([]schedule.Booking, len(bookings))
	for i := range bookings {
		projections[i] = BookingToProjection(&bookings[i])
	}
	return projections
}

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	status := entity.NormalizeStatus(string(booking.Status))

	return &dto.BookingResponse{
		ID:              booking.ID,
		BookingCode:     booking.BookingCode,
		CourtID:         booking.CourtID,
		CourtName:       booking.CourtName,
		LocationID:      booking.LocationID,
		LocationName:    booking.LocationName,
		LocationAddress: booking.LocationAddress,
		PlayerName:      booking.PlayerName,
		PlayerPhone:     booking.PlayerPhone,
		BookingDate:     booking.BookingDate.Format("2006-01-02"),
		StartHours:      booking.StartHours,
		Status:          string(status),
		StatusBadge:     schedule.PresentStatus(status),
		TotalPrice:      booking.TotalPrice.Truncate(0).String(),
		DisplayDate:     schedule.FormatDisplayDate(booking.BookingDate),
		DisplayHours:    schedule.FormatHourRange(booking.StartHours),
		DisplayPrice:    schedule.FormatVND(booking.TotalPrice),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp := BookingToResponse(&bookings[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// ClassifiedToResponses converts one classified bucket into response DTOs,
// pairing each projection with its stored entity by ID for the fields the
// projection does not carry.
func ClassifiedToResponses(classified []schedule.ClassifiedBooking, byID map[string]*entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, 0, len(classified))
	for _, cb := range classified {
		booking, ok := byID[cb.ID]
		if !ok {
			continue
		}
		resp := BookingToResponse(booking)
		resp.DisplayDate = cb.DisplayDate
		resp.DisplayHours = cb.DisplayHours
		resp.DisplayPrice = cb.DisplayPrice
		resp.StatusBadge = cb.Badge
		responses = append(responses, *resp)
	}
	return responses
}
