package usecase

import (
	"context"
	"errors"

	"ombaro-backend/internal/delivery/dto"
	"ombaro-backend/internal/domain/access"

	"github.com/sirupsen/logrus"
)

var ErrModuleNotFound = errors.New("module not found")

// DashboardUsecase serves the generic portal dashboard: which modules a role
// sees and what each module shows. Everything here is a projection of the
// static access catalog, so there is no database involved.
type DashboardUsecase interface {
	GetRoleDirectory(ctx context.Context) (*dto.RoleDirectoryResponse, error)
	GetVisibleModules(ctx context.Context, roleID string) (*dto.VisibleModulesResponse, error)
	GetModuleContent(ctx context.Context, moduleID, roleID string) (*dto.ModuleContentResponse, error)
}

type dashboardUsecase struct {
	log      *logrus.Logger
	registry *access.Registry
}

func NewDashboardUsecase(log *logrus.Logger, registry *access.Registry) DashboardUsecase {
	return &dashboardUsecase{
		log:      log,
		registry: registry,
	}
}

func (u *dashboardUsecase) GetRoleDirectory(ctx context.Context) (*dto.RoleDirectoryResponse, error) {
	roles := u.registry.Roles()
	return &dto.RoleDirectoryResponse{
		Roles: roles,
		Total: len(roles),
	}, nil
}

// GetVisibleModules resolves the module list for a role. An unknown role gets
// an empty list, not an error: the dashboard renders empty rather than
// breaking.
func (u *dashboardUsecase) GetVisibleModules(ctx context.Context, roleID string) (*dto.VisibleModulesResponse, error) {
	modules := u.registry.VisibleModules(roleID)
	return &dto.VisibleModulesResponse{
		Role:    roleID,
		Modules: modules,
		Total:   len(modules),
	}, nil
}

func (u *dashboardUsecase) GetModuleContent(ctx context.Context, moduleID, roleID string) (*dto.ModuleContentResponse, error) {
	if _, ok := u.registry.Module(moduleID); !ok {
		return nil, ErrModuleNotFound
	}

	return &dto.ModuleContentResponse{
		ModuleID: moduleID,
		Role:     roleID,
		Content:  u.registry.ModuleContent(moduleID, roleID),
	}, nil
}
