package handler

import (
	"encoding/json"
	"net/http"

	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/usecase"
	"court-booking-backend/pkg/response"
	"court-booking-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	validator       *validator.CustomValidator
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase, validator *validator.CustomValidator) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		validator:       validator,
	}
}

// CreateLocation registers a new badminton location for the authenticated owner
// @Summary Create a location
// @Tags Locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "Create Location Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.locationUsecase.CreateLocation(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidHourRange:
			response.Error(w, http.StatusBadRequest, "Open hour must be before close hour", nil)
		default:
			response.InternalServerError(w, "Failed to create location")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Location created successfully", location)
}

// GetLocations lists all active locations for players to browse
// @Summary List active locations
// @Tags Locations
// @Produce json
// @Success 200 {object} response.Response
// @Router /locations [get]
func (h *LocationHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationUsecase.GetActiveLocations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get locations")
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", locations)
}

// GetLocation returns one location by ID
// @Summary Get a location
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	location, err := h.locationUsecase.GetLocation(r.Context(), locationID)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		default:
			response.InternalServerError(w, "Failed to get location")
		}
		return
	}

	response.Success(w, http.StatusOK, "Location retrieved successfully", location)
}

// GetMyLocations lists the authenticated owner's locations
// @Summary List my locations
// @Tags Locations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /owner/locations [get]
func (h *LocationHandler) GetMyLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationUsecase.GetMyLocations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get locations")
		return
	}

	response.Success(w, http.StatusOK, "Locations retrieved successfully", locations)
}

// UpdateLocation updates a location the owner controls
// @Summary Update a location
// @Tags Locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body dto.UpdateLocationRequest true "Update Location Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owner/locations/{id} [put]
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	var req dto.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.locationUsecase.UpdateLocation(r.Context(), locationID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationNotOwned:
			response.Forbidden(w, "Location does not belong to you")
		case usecase.ErrInvalidHourRange:
			response.Error(w, http.StatusBadRequest, "Open hour must be before close hour", nil)
		default:
			response.InternalServerError(w, "Failed to update location")
		}
		return
	}

	response.Success(w, http.StatusOK, "Location updated successfully", location)
}

// DeleteLocation removes a location the owner controls
// @Summary Delete a location
// @Tags Locations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owner/locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	if err := h.locationUsecase.DeleteLocation(r.Context(), locationID); err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationNotOwned:
			response.Forbidden(w, "Location does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete location")
		}
		return
	}

	response.Success(w, http.StatusOK, "Location deleted successfully", nil)
}
