package handler

import (
	"net/http"

	"ombaro-backend/internal/delivery/http/middleware"
	"ombaro-backend/internal/usecase"
	"ombaro-backend/pkg/response"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetRoleDirectory returns every role definition
// @Summary Role directory
// @Description Directory of role definitions for the role-selection screen
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Router /roles [get]
func (h *DashboardHandler) GetRoleDirectory(w http.ResponseWriter, r *http.Request) {
	roles, err := h.dashboardUsecase.GetRoleDirectory(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get roles")
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved successfully", roles)
}

// GetVisibleModules returns the caller's dashboard modules
// @Summary Visible modules
// @Description Modules the caller's role can see
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/modules [get]
func (h *DashboardHandler) GetVisibleModules(w http.ResponseWriter, r *http.Request) {
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Role information not found")
		return
	}

	modules, err := h.dashboardUsecase.GetVisibleModules(r.Context(), roleID)
	if err != nil {
		response.InternalServerError(w, "Failed to get modules")
		return
	}

	response.Success(w, http.StatusOK, "Modules retrieved successfully", modules)
}

// GetModuleContent returns a module's dashboard content for the caller's role
// @Summary Module content
// @Description Stats, actions and recent activity for a module as seen by the caller's role
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dashboard/modules/{id} [get]
func (h *DashboardHandler) GetModuleContent(w http.ResponseWriter, r *http.Request) {
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Role information not found")
		return
	}

	moduleID := mux.Vars(r)["id"]

	content, err := h.dashboardUsecase.GetModuleContent(r.Context(), moduleID, roleID)
	if err != nil {
		switch err {
		case usecase.ErrModuleNotFound:
			response.NotFound(w, "Module not found")
		default:
			response.InternalServerError(w, "Failed to get module content")
		}
		return
	}

	response.Success(w, http.StatusOK, "Module content retrieved successfully", content)
}
