package services

import (
	"Vaulted/internal/apperrors"
	"Vaulted/internal/models"
	"Vaulted/internal/repository"
)

// PermissionService answers what role a user holds on an item and gates
// mutations on the role precedence owner > edit > view. Absence of a grant
// means no access at all.
type PermissionService interface {
	RoleOf(itemType string, itemID, userID uint) (models.Role, error)
	Authorize(itemType string, itemID, userID uint, required models.Role) error
}

type permissionServiceImpl struct {
	permissionRepo repository.PermissionRepository
}

func NewPermissionService(permissionRepo repository.PermissionRepository) PermissionService {
	return &permissionServiceImpl{permissionRepo: permissionRepo}
}

// RoleOf returns the user's role on the item, or the empty role when no
// grant exists.
func (s *permissionServiceImpl) RoleOf(itemType string, itemID, userID uint) (models.Role, error) {
	perm, err := s.permissionRepo.FindRole(itemType, itemID, userID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrStore, err)
	}
	if perm == nil {
		return "", nil
	}
	return perm.Role, nil
}

// Authorize fails with Forbidden unless the user holds at least the required
// role on the item. It leaks nothing about the item beyond that check.
func (s *permissionServiceImpl) Authorize(itemType string, itemID, userID uint, required models.Role) error {
	role, err := s.RoleOf(itemType, itemID, userID)
	if err != nil {
		return err
	}
	if !role.AtLeast(required) {
		return apperrors.ErrForbidden
	}
	return nil
}
