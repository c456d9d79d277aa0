package repository

import (
	"Vaulted/internal/models"
	"time"

	"gorm.io/gorm"
)

type FolderRepository interface {
	GenericRepository[models.Folder]
	CreateWithOwner(folder *models.Folder) error
	FindChildren(userID uint, parentID *uint, limit, offset int) ([]models.Folder, error)
	FindChildrenByParent(parentID uint) ([]models.Folder, error)
	MoveSubtree(folder *models.Folder, newParentID *uint, newPath string) error
	SetDeletedAt(id uint, deletedAt *time.Time) error
	SearchByName(userID uint, query string, limit, offset int) ([]models.Folder, error)
	PurgeDeletedBefore(cutoff time.Time) (int64, error)
}

type FolderRepositoryImpl struct {
	GenericRepository[models.Folder]
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &FolderRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Folder](db),
		db:                db,
	}
}

// CreateWithOwner inserts the folder row together with its owner grant.
// Both persist or neither does.
func (r *FolderRepositoryImpl) CreateWithOwner(folder *models.Folder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(folder).Error; err != nil {
			return err
		}
		grant := &models.ItemPermission{
			ItemType: models.ItemTypeFolder,
			ItemID:   folder.ID,
			UserID:   folder.UserID,
			Role:     models.RoleOwner,
		}
		return tx.Create(grant).Error
	})
}

func (r *FolderRepositoryImpl) FindChildren(userID uint, parentID *uint, limit, offset int) ([]models.Folder, error) {
	var folders []models.Folder
	query := r.db.Where("user_id = ? AND deleted_at IS NULL", userID)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}
	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// FindChildrenByParent lists live direct subfolders regardless of owner.
// Used when resolving folder share links, where no user identity exists.
func (r *FolderRepositoryImpl) FindChildrenByParent(parentID uint) ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.Where("parent_id = ? AND deleted_at IS NULL", parentID).
		Order("created_at DESC, id DESC").Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// MoveSubtree reparents the folder and re-paths it together with every
// descendant in one transaction. The re-path runs as a single UPDATE so a
// concurrent move can never observe a half-repathed subtree.
func (r *FolderRepositoryImpl) MoveSubtree(folder *models.Folder, newParentID *uint, newPath string) error {
	oldPath := folder.Path
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Folder{}).Where("id = ?", folder.ID).
			Update("parent_id", newParentID).Error
		if err != nil {
			return err
		}
		// Replaces the old path prefix on the folder and its whole subtree.
		// Descendants are matched by exact prefix comparison; LIKE would
		// treat the underscores sanitized segments contain as wildcards.
		err = tx.Exec(`
			UPDATE folders
			SET path = ? || SUBSTR(path, ?)
			WHERE user_id = ? AND (path = ? OR SUBSTR(path, 1, ?) = ?)`,
			newPath, len(oldPath)+1, folder.UserID, oldPath, len(oldPath)+1, oldPath+".",
		).Error
		if err != nil {
			return err
		}
		folder.ParentID = newParentID
		folder.Path = newPath
		return nil
	})
}

func (r *FolderRepositoryImpl) SetDeletedAt(id uint, deletedAt *time.Time) error {
	return r.db.Model(&models.Folder{}).Where("id = ?", id).
		Update("deleted_at", deletedAt).Error
}

func (r *FolderRepositoryImpl) SearchByName(userID uint, query string, limit, offset int) ([]models.Folder, error) {
	var folders []models.Folder
	err := r.db.Where(`user_id = ? AND deleted_at IS NULL AND LOWER(name) LIKE ? ESCAPE '\'`, userID, "%"+escapeLike(query)+"%").
		Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepositoryImpl) PurgeDeletedBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Folder{})
	return res.RowsAffected, res.Error
}
