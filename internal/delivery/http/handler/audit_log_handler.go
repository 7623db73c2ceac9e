package handler

import (
	"net/http"
	"strconv"

	"ombaro-backend/internal/domain/repository"
	"ombaro-backend/internal/usecase"
	"ombaro-backend/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// GetAuditLogs lists audit trail entries
// @Summary Audit logs
// @Description List audit trail entries, newest first, optionally filtered by action
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param action query string false "Action filter, e.g. booking.advance"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.AuditLogFilter{
		Action: q.Get("action"),
	}
	if raw := q.Get("limit"); raw != "" {
		filter.Limit, _ = strconv.Atoi(raw)
	}
	if raw := q.Get("offset"); raw != "" {
		filter.Offset, _ = strconv.Atoi(raw)
	}

	logs, err := h.auditLogUsecase.GetAuditLogs(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
