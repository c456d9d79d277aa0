package repository

import (
	"Vaulted/internal/models"
	"errors"
	"gorm.io/gorm"
)

type PermissionRepository interface {
	GenericRepository[models.ItemPermission]
	FindRole(itemType string, itemID, userID uint) (*models.ItemPermission, error)
}

type PermissionRepositoryImpl struct {
	GenericRepository[models.ItemPermission]
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &PermissionRepositoryImpl{
		GenericRepository: NewGenericRepository[models.ItemPermission](db),
		db:                db,
	}
}

// FindRole returns the single grant for (item, user), or nil when the user
// holds nothing on the item.
func (r *PermissionRepositoryImpl) FindRole(itemType string, itemID, userID uint) (*models.ItemPermission, error) {
	var perm models.ItemPermission
	err := r.db.Where("item_type = ? AND item_id = ? AND user_id = ?", itemType, itemID, userID).
		First(&perm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &perm, nil
}
