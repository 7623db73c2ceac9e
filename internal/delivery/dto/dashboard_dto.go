package dto

import "ombaro-backend/internal/domain/access"

// Dashboard responses reuse the access catalog types directly; the catalog is
// immutable static data and already JSON-tagged.

type RoleDirectoryResponse struct {
	Roles []access.RoleDefinition `json:"roles"`
	Total int                     `json:"total"`
}

type VisibleModulesResponse struct {
	Role    string          `json:"role"`
	Modules []access.Module `json:"modules"`
	Total   int             `json:"total"`
}

type ModuleContentResponse struct {
	ModuleID string               `json:"module_id"`
	Role     string               `json:"role"`
	Content  access.ModuleContent `json:"content"`
}
