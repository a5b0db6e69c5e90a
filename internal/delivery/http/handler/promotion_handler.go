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

type PromotionHandler struct {
	promotionUsecase usecase.PromotionUsecase
	validator        *validator.CustomValidator
}

func NewPromotionHandler(promotionUsecase usecase.PromotionUsecase, validator *validator.CustomValidator) *PromotionHandler {
	return &PromotionHandler{
		promotionUsecase: promotionUsecase,
		validator:        validator,
	}
}

// CreatePromotion creates a discount code on one of the owner's locations
// @Summary Create a promotion
// @Tags Promotions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePromotionRequest true "Create Promotion Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /owner/promotions [post]
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	promotion, err := h.promotionUsecase.CreatePromotion(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationNotOwned:
			response.Forbidden(w, "Location does not belong to you")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrPromotionDateOrder:
			response.Error(w, http.StatusBadRequest, "Start date must not be after end date", nil)
		case usecase.ErrPromotionCodeTaken:
			response.Error(w, http.StatusConflict, "Promotion code already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create promotion")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Promotion created successfully", promotion)
}

// GetPromotionsByLocation lists the promotions of one of the owner's locations
// @Summary List promotions of a location
// @Tags Promotions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /owner/locations/{id}/promotions [get]
func (h *PromotionHandler) GetPromotionsByLocation(w http.ResponseWriter, r *http.Request) {
	locationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid location ID", nil)
		return
	}

	promotions, err := h.promotionUsecase.GetPromotionsByLocation(r.Context(), locationID)
	if err != nil {
		switch err {
		case usecase.ErrLocationNotFound:
			response.NotFound(w, "Location not found")
		case usecase.ErrLocationNotOwned:
			response.Forbidden(w, "Location does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get promotions")
		}
		return
	}

	response.Success(w, http.StatusOK, "Promotions retrieved successfully", promotions)
}

// UpdatePromotion updates a promotion the owner controls
// @Summary Update a promotion
// @Tags Promotions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param request body dto.UpdatePromotionRequest true "Update Promotion Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owner/promotions/{id} [put]
func (h *PromotionHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	promotionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid promotion ID", nil)
		return
	}

	var req dto.UpdatePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	promotion, err := h.promotionUsecase.UpdatePromotion(r.Context(), promotionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPromotionNotFound:
			response.NotFound(w, "Promotion not found")
		case usecase.ErrPromotionNotOwned:
			response.Forbidden(w, "Promotion does not belong to you")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrPromotionDateOrder:
			response.Error(w, http.StatusBadRequest, "Start date must not be after end date", nil)
		default:
			response.InternalServerError(w, "Failed to update promotion")
		}
		return
	}

	response.Success(w, http.StatusOK, "Promotion updated successfully", promotion)
}

// DeletePromotion removes a promotion the owner controls
// @Summary Delete a promotion
// @Tags Promotions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /owner/promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	promotionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid promotion ID", nil)
		return
	}

	if err := h.promotionUsecase.DeletePromotion(r.Context(), promotionID); err != nil {
		switch err {
		case usecase.ErrPromotionNotFound:
			response.NotFound(w, "Promotion not found")
		case usecase.ErrPromotionNotOwned:
			response.Forbidden(w, "Promotion does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete promotion")
		}
		return
	}

	response.Success(w, http.StatusOK, "Promotion deleted successfully", nil)
}
