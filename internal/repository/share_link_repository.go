package repository

import (
	"Vaulted/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ShareLinkRepository interface {
	GenericRepository[models.ShareLink]
	FindByToken(token string) (*models.ShareLink, error)
	SetRevokedAt(id uint, revokedAt time.Time) error
	DeleteDefunctBefore(cutoff time.Time) (int64, error)
}

type ShareLinkRepositoryImpl struct {
	GenericRepository[models.ShareLink]
	db *gorm.DB
}

func NewShareLinkRepository(db *gorm.DB) ShareLinkRepository {
	return &ShareLinkRepositoryImpl{
		GenericRepository: NewGenericRepository[models.ShareLink](db),
		db:                db,
	}
}

func (r *ShareLinkRepositoryImpl) FindByToken(token string) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.Where("token = ?", token).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *ShareLinkRepositoryImpl) SetRevokedAt(id uint, revokedAt time.Time) error {
	return r.db.Model(&models.ShareLink{}).Where("id = ?", id).
		Update("revoked_at", revokedAt).Error
}

// DeleteDefunctBefore hard-deletes links that were revoked, or expired,
// before the cutoff. Dead links are never resurrected, so purging them is
// safe bookkeeping.
func (r *ShareLinkRepositoryImpl) DeleteDefunctBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("revoked_at IS NOT NULL AND revoked_at < ?", cutoff).
		Or("expires_at IS NOT NULL AND expires_at < ?", cutoff).
		Delete(&models.ShareLink{})
	return res.RowsAffected, res.Error
}
