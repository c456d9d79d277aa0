package services

import (
	"Vaulted/internal/apperrors"
	"Vaulted/internal/config"
	"Vaulted/internal/dto"
	"Vaulted/internal/helpers"
	"Vaulted/internal/models"
	"Vaulted/internal/repository"
	"Vaulted/internal/storage"
	"context"
	"time"
)

// ShareService issues, revokes and resolves tokenized access grants. A
// resolved token bypasses per-user permission checks; expiry and revocation
// take their place.
type ShareService interface {
	CreateLink(userID uint, itemType string, itemID uint, role models.Role, expiresInSeconds *int64) (*models.ShareLink, error)
	RevokeLink(linkID, userID uint) (*models.ShareLink, error)
	ResolveToken(ctx context.Context, token string) (*dto.ShareResolution, error)
}

type shareServiceImpl struct {
	shareRepo     repository.ShareLinkRepository
	folderRepo    repository.FolderRepository
	fileRepo      repository.FileRepository
	permissions   PermissionService
	blobStore     storage.BlobStore
	configuration *config.Configuration
}

func NewShareService(
	shareRepo repository.ShareLinkRepository,
	folderRepo repository.FolderRepository,
	fileRepo repository.FileRepository,
	permissions PermissionService,
	blobStore storage.BlobStore,
	configuration *config.Configuration,
) ShareService {
	return &shareServiceImpl{
		shareRepo:     shareRepo,
		folderRepo:    folderRepo,
		fileRepo:      fileRepo,
		permissions:   permissions,
		blobStore:     blobStore,
		configuration: configuration,
	}
}

// CreateLink mints a link whose role never exceeds the creator's own role on
// the item.
func (s *shareServiceImpl) CreateLink(userID uint, itemType string, itemID uint, role models.Role, expiresInSeconds *int64) (*models.ShareLink, error) {
	if itemType != models.ItemTypeFolder && itemType != models.ItemTypeFile {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "item type must be folder or file")
	}
	if !role.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "unknown role")
	}

	creatorRole, err := s.permissions.RoleOf(itemType, itemID, userID)
	if err != nil {
		return nil, err
	}
	if creatorRole == "" {
		return nil, apperrors.ErrForbidden
	}
	if !creatorRole.AtLeast(role) {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "insufficient role to create this link")
	}

	token, err := helpers.NewShareToken()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	var expiresAt *time.Time
	if expiresInSeconds != nil {
		t := time.Now().UTC().Add(time.Duration(*expiresInSeconds) * time.Second)
		expiresAt = &t
	}

	link := &models.ShareLink{
		ItemType:  itemType,
		ItemID:    itemID,
		Token:     token,
		Role:      role,
		CreatedBy: userID,
		ExpiresAt: expiresAt,
	}
	if err := s.shareRepo.Create(link); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return link, nil
}

// RevokeLink is allowed for the link's creator or an owner of the underlying
// item. Revoking an already-revoked link is a no-op success.
func (s *shareServiceImpl) RevokeLink(linkID, userID uint) (*models.ShareLink, error) {
	link, err := s.shareRepo.FindByID(linkID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	if link == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "share link not found")
	}

	if link.CreatedBy != userID {
		if err := s.permissions.Authorize(link.ItemType, link.ItemID, userID, models.RoleOwner); err != nil {
			return nil, err
		}
	}

	if link.Revoked() {
		return link, nil
	}
	now := time.Now().UTC()
	if err := s.shareRepo.SetRevokedAt(link.ID, now); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	link.RevokedAt = &now
	return link, nil
}

// ResolveToken requires no identity. Unknown tokens are NotFound; revoked or
// expired ones are Gone, permanently.
func (s *shareServiceImpl) ResolveToken(ctx context.Context, token string) (*dto.ShareResolution, error) {
	link, err := s.shareRepo.FindByToken(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	if link == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "invalid link")
	}
	if link.Revoked() {
		return nil, apperrors.WithMessage(apperrors.ErrGone, "link revoked")
	}
	if link.Expired(time.Now().UTC()) {
		return nil, apperrors.WithMessage(apperrors.ErrGone, "link expired")
	}

	if link.ItemType == models.ItemTypeFile {
		return s.resolveFile(ctx, link)
	}
	return s.resolveFolder(link)
}

func (s *shareServiceImpl) resolveFile(ctx context.Context, link *models.ShareLink) (*dto.ShareResolution, error) {
	file, err := s.fileRepo.FindByID(link.ItemID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	if file == nil || file.DeletedAt != nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "file not found")
	}

	ttl := time.Duration(s.configuration.Storage.SignURLExpires) * time.Second
	url, err := s.blobStore.SignURL(ctx, file.StoragePath, ttl)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}

	return &dto.ShareResolution{
		Type:     models.ItemTypeFile,
		Role:     link.Role,
		URL:      url,
		Name:     file.Name,
		MimeType: file.MimeType,
		Size:     file.Size,
	}, nil
}

// resolveFolder returns one level of children only; each deeper level needs
// its own share.
func (s *shareServiceImpl) resolveFolder(link *models.ShareLink) (*dto.ShareResolution, error) {
	folder, err := s.folderRepo.FindByID(link.ItemID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	if folder == nil || folder.DeletedAt != nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "folder not found")
	}

	subfolders, err := s.folderRepo.FindChildrenByParent(folder.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	files, err := s.fileRepo.ListByFolderAny(folder.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}

	res := &dto.ShareResolution{
		Type:   models.ItemTypeFolder,
		Role:   link.Role,
		Folder: &dto.FolderSummary{ID: folder.ID, Name: folder.Name},
	}
	for _, f := range subfolders {
		res.Subfolders = append(res.Subfolders, dto.FolderSummary{
			ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, f := range files {
		res.Files = append(res.Files, dto.FileSummary{
			ID: f.ID, Name: f.Name, Size: f.Size, MimeType: f.MimeType,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
		})
	}
	return res, nil
}
