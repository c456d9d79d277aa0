package repository

import (
	"Vaulted/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDBWithShareLinks() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	err := db.AutoMigrate(&models.ShareLink{})
	if err != nil {
		return nil
	}
	return db
}

func TestShareLinkRepository_FindByToken(t *testing.T) {
	db := setupTestDBWithShareLinks()
	repo := NewShareLinkRepository(db)

	link := &models.ShareLink{ItemType: models.ItemTypeFile, ItemID: 4, Token: "tok123", Role: models.RoleView, CreatedBy: 7}
	assert.NoError(t, repo.Create(link))

	found, err := repo.FindByToken("tok123")
	assert.NoError(t, err)
	assert.Equal(t, link.ID, found.ID)

	missing, err := repo.FindByToken("nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestShareLinkRepository_SetRevokedAt(t *testing.T) {
	db := setupTestDBWithShareLinks()
	repo := NewShareLinkRepository(db)

	link := &models.ShareLink{ItemType: models.ItemTypeFile, ItemID: 4, Token: "tok123", Role: models.RoleView, CreatedBy: 7}
	assert.NoError(t, repo.Create(link))

	now := time.Now().UTC()
	assert.NoError(t, repo.SetRevokedAt(link.ID, now))

	found, _ := repo.FindByToken("tok123")
	assert.NotNil(t, found.RevokedAt)
	assert.True(t, found.Revoked())
}

func TestShareLinkRepository_DeleteDefunctBefore(t *testing.T) {
	db := setupTestDBWithShareLinks()
	repo := NewShareLinkRepository(db)

	old := time.Now().UTC().Add(-72 * time.Hour)
	recent := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(72 * time.Hour)

	revokedOld := &models.ShareLink{ItemType: models.ItemTypeFile, ItemID: 1, Token: "a", Role: models.RoleView, CreatedBy: 7, RevokedAt: &old}
	expiredOld := &models.ShareLink{ItemType: models.ItemTypeFile, ItemID: 2, Token: "b", Role: models.RoleView, CreatedBy: 7, ExpiresAt: &old}
	revokedRecently := &models.ShareLink{ItemType: models.ItemTypeFile, ItemID: 3, Token: "c", Role: models.RoleView, CreatedBy: 7, RevokedAt: &recent}
	live := &models.ShareLink{ItemType: models.ItemTypeFile, ItemID: 4, Token: "d", Role: models.RoleView, CreatedBy: 7, ExpiresAt: &future}
	for _, l := range []*models.ShareLink{revokedOld, expiredOld, revokedRecently, live} {
		assert.NoError(t, repo.Create(l))
	}

	deleted, err := repo.DeleteDefunctBefore(time.Now().UTC().Add(-24 * time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var remaining []models.ShareLink
	db.Find(&remaining)
	assert.Len(t, remaining, 2)
}
