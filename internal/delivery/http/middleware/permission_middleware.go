package middleware

import (
	"net/http"

	"ombaro-backend/internal/domain/access"
	"ombaro-backend/pkg/response"
)

// RequireRole checks that the caller's role is one of the allowed role IDs.
// Role is read from context (set by AuthMiddleware from JWT claims).
func RequireRole(allowedRoleIDs ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowed := range allowedRoleIDs {
				if roleID == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequirePermission checks the caller's role against the access registry.
// A role holding the wildcard permission passes every check.
func RequirePermission(registry *access.Registry, permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !registry.HasPermission(roleID, permission) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireCustomer is a convenience middleware for customer-only endpoints
func RequireCustomer(next http.Handler) http.Handler {
	return RequireRole(access.RoleCustomer)(next)
}

// RequireSuperAdmin is a convenience middleware for super-admin-only endpoints
func RequireSuperAdmin(next http.Handler) http.Handler {
	return RequireRole(access.RoleSuperAdmin)(next)
}
