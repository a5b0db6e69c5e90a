package handler

import (
	"net/http"

	"court-booking-backend/internal/usecase"
	"court-booking-backend/pkg/response"
)

type StatisticsHandler struct {
	statisticsUsecase usecase.StatisticsUsecase
}

func NewStatisticsHandler(statisticsUsecase usecase.StatisticsUsecase) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsUsecase: statisticsUsecase,
	}
}

// GetRevenue returns daily revenue for the owner's locations over a date range
// @Summary Get daily revenue
// @Tags Statistics
// @Security BearerAuth
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /owner/statistics/revenue [get]
func (h *StatisticsHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.Error(w, http.StatusBadRequest, "Query parameters 'from' and 'to' are required", nil)
		return
	}

	revenue, err := h.statisticsUsecase.GetRevenueByDay(r.Context(), from, to)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "From date must not be after to date", nil)
		default:
			response.InternalServerError(w, "Failed to get revenue")
		}
		return
	}

	response.Success(w, http.StatusOK, "Revenue retrieved successfully", revenue)
}
