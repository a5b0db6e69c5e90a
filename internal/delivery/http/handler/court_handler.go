package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/usecase"
	"court-booking-backend/pkg/response"
	"court-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CourtHandler struct {
	courtUsecase usecase.CourtUsecase
	validator    *validator.CustomValidator
}

func NewCourtHandler(courtUsecase usecase.CourtUsecase, validator *validator.CustomValidator) *CourtHandler {
	return &CourtHandler{
		courtUsecase: courtUsecase,
		validator:    validator,
	}
}

// CreateCourt adds a court to one of the owner's locations
// @Summary Create a court
// @Tags Courts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCourtRequest true "Create Court Request"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /owner/courts [post]
func (h *CourtHandler) CreateCourt(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	court, err := h.courtUsecase.CreateCourt(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationNotOwned:
			response.Forbidden(w, "Location does not belong to you")
		default:
			response.InternalServerError(w, "Failed to create court")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Court created successfully", court)
}

// GetCourtsByLocation lists the courts of a location
// @Summary List courts of a location
// @Tags Courts
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /locations/{id}/courts [get]
func (h *CourtHandler) GetCourtsByLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	courts, err := h.courtUsecase.GetCourtsByLocation(r.Context(), locationID)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		default:
			response.InternalServerError(w, "Failed to get courts")
		}
		return
	}

	response.Success(w, http.StatusOK, "Courts retrieved successfully", courts)
}

// GetCourtSlots returns the hourly availability grid for a court on a day
// @Summary Get court slot grid
// @Description Hourly availability for one court on one day, with the booking occupying the current hour when viewing today
// @Tags Courts
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /courts/{id}/slots [get]
func (h *CourtHandler) GetCourtSlots(w http.ResponseWriter, r *http.Request) {
	courtID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid court ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
		return
	}

	slots, err := h.courtUsecase.GetCourtSlots(r.Context(), courtID, date, time.Now())
	if err != nil {
		switch err {
		case usecase.ErrCourtNotFound:
			response.NotFound(w, "Court not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get court slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Court slots retrieved successfully", slots)
}

// UpdateCourt updates a court the owner controls
// @Summary Update a court
// @Tags Courts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param request body dto.UpdateCourtRequest true "Update Court Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owner/courts/{id} [put]
func (h *CourtHandler) UpdateCourt(w http.ResponseWriter, r *http.Request) {
	courtID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid court ID", nil)
		return
	}

	var req dto.UpdateCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	court, err := h.courtUsecase.UpdateCourt(r.Context(), courtID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCourtNotFound:
			response.NotFound(w, "Court not found")
		case usecase.ErrCourtNotOwned:
			response.Forbidden(w, "Court does not belong to you")
		default:
			response.InternalServerError(w, "Failed to update court")
		}
		return
	}

	response.Success(w, http.StatusOK, "Court updated successfully", court)
}

// DeleteCourt removes a court the owner controls
// @Summary Delete a court
// @Tags Courts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owner/courts/{id} [delete]
func (h *CourtHandler) DeleteCourt(w http.ResponseWriter, r *http.Request) {
	courtID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid court ID", nil)
		return
	}

	if err := h.courtUsecase.DeleteCourt(r.Context(), courtID); err != nil {
		switch err {
		case usecase.ErrCourtNotFound:
			response.NotFound(w, "Court not found")
		case usecase.ErrCourtNotOwned:
			response.Forbidden(w, "Court does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete court")
		}
		return
	}

	response.Success(w, http.StatusOK, "Court deleted successfully", nil)
}
