package middleware

import (
	"net/http"

	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get role ID from context (set by AuthMiddleware)
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			// Check if user's role is in allowed roles
			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireOwner is a convenience middleware for court-owner-only endpoints
func RequireOwner(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDOwner)(next)
}

// RequirePlayer is a convenience middleware for player-only endpoints
func RequirePlayer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPlayer)(next)
}

// RequireOwnerOrAdmin is a convenience middleware for owner or admin endpoints
func RequireOwnerOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDOwner, entity.RoleIDAdmin)(next)
}
