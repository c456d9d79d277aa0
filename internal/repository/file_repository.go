package repository

import (
	"Vaulted/internal/helpers"
	"Vaulted/internal/models"
	"time"

	"gorm.io/gorm"
)

type FileRepository interface {
	GenericRepository[models.File]
	CreateWithOwner(file *models.File) error
	ListByFolder(userID uint, folderID *uint, limit, offset int) ([]models.File, error)
	ListByFolderKeyset(userID uint, folderID *uint, cursor *helpers.Cursor, limit int) ([]models.File, error)
	ListByFolderAny(folderID uint) ([]models.File, error)
	SetFolderID(id uint, folderID *uint) error
	SetDeletedAt(id uint, deletedAt *time.Time) error
	SearchByName(userID uint, query string, limit, offset int) ([]models.File, error)
	PurgeDeletedBefore(cutoff time.Time) (int64, error)
}

type FileRepositoryImpl struct {
	GenericRepository[models.File]
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &FileRepositoryImpl{
		GenericRepository: NewGenericRepository[models.File](db),
		db:                db,
	}
}

// CreateWithOwner inserts the file row together with its owner grant in one
// transaction. The blob itself is written before this and is not covered by
// the transaction.
func (r *FileRepositoryImpl) CreateWithOwner(file *models.File) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(file).Error; err != nil {
			return err
		}
		grant := &models.ItemPermission{
			ItemType: models.ItemTypeFile,
			ItemID:   file.ID,
			UserID:   file.UserID,
			Role:     models.RoleOwner,
		}
		return tx.Create(grant).Error
	})
}

func (r *FileRepositoryImpl) scopedQuery(userID uint, folderID *uint) *gorm.DB {
	query := r.db.Where("user_id = ? AND deleted_at IS NULL", userID)
	if folderID != nil {
		return query.Where("folder_id = ?", *folderID)
	}
	return query.Where("folder_id IS NULL")
}

func (r *FileRepositoryImpl) ListByFolder(userID uint, folderID *uint, limit, offset int) ([]models.File, error) {
	var files []models.File
	err := r.scopedQuery(userID, folderID).
		Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ListByFolderKeyset fetches rows strictly after the cursor position in
// (created_at DESC, id DESC) order. A nil cursor starts from the beginning.
func (r *FileRepositoryImpl) ListByFolderKeyset(userID uint, folderID *uint, cursor *helpers.Cursor, limit int) ([]models.File, error) {
	var files []models.File
	query := r.scopedQuery(userID, folderID)
	if cursor != nil {
		query = query.Where("created_at < ? OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}
	err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ListByFolderAny lists live files in a folder regardless of owner. Used
// when resolving folder share links.
func (r *FileRepositoryImpl) ListByFolderAny(folderID uint) ([]models.File, error) {
	var files []models.File
	err := r.db.Where("folder_id = ? AND deleted_at IS NULL", folderID).
		Order("created_at DESC, id DESC").Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepositoryImpl) SetFolderID(id uint, folderID *uint) error {
	return r.db.Model(&models.File{}).Where("id = ?", id).
		Update("folder_id", folderID).Error
}

func (r *FileRepositoryImpl) SetDeletedAt(id uint, deletedAt *time.Time) error {
	return r.db.Model(&models.File{}).Where("id = ?", id).
		Update("deleted_at", deletedAt).Error
}

func (r *FileRepositoryImpl) SearchByName(userID uint, query string, limit, offset int) ([]models.File, error) {
	var files []models.File
	err := r.db.Where(`user_id = ? AND deleted_at IS NULL AND LOWER(name) LIKE ? ESCAPE '\'`, userID, "%"+escapeLike(query)+"%").
		Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepositoryImpl) PurgeDeletedBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.File{})
	return res.RowsAffected, res.Error
}
