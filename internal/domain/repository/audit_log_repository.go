package repository

import (
	"ombaro-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogFilter narrows audit trail queries.
type AuditLogFilter struct {
	Action string
	Limit  int
	Offset int
}

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	Find(db *gorm.DB, filter AuditLogFilter) ([]entity.AuditLog, int64, error)
}
