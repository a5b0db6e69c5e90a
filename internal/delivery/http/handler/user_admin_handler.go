package handler

import (
	"net/http"

	"court-booking-backend/internal/usecase"
	"court-booking-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserAdminHandler struct {
	userAdminUsecase usecase.UserAdminUsecase
}

func NewUserAdminHandler(userAdminUsecase usecase.UserAdminUsecase) *UserAdminHandler {
	return &UserAdminHandler{
		userAdminUsecase: userAdminUsecase,
	}
}

// ListUsers lists all accounts for the admin panel
// @Summary List users
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/users [get]
func (h *UserAdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userAdminUsecase.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// ActivateUser reinstates a suspended account
// @Summary Activate a user
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/activate [post]
func (h *UserAdminHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "User activated successfully")
}

// DeactivateUser suspends an account
// @Summary Deactivate a user
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/deactivate [post]
func (h *UserAdminHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "User deactivated successfully")
}

func (h *UserAdminHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, successMessage string) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.userAdminUsecase.SetUserActive(r.Context(), userID, active); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, successMessage, nil)
}
