package services

import (
	"Vaulted/internal/apperrors"
	"Vaulted/internal/helpers"
	"Vaulted/internal/models"
	"Vaulted/internal/repository"
	"strings"
	"time"
)

// FolderService owns the folder lifecycle: creation with path computation,
// move with cascading descendant re-path, rename, soft delete and restore.
type FolderService interface {
	CreateFolder(name string, userID uint, parentID *uint) (*models.Folder, error)
	GetFolderByID(id uint) (*models.Folder, error)
	RenameFolder(id, userID uint, name string) (*models.Folder, error)
	MoveFolder(id, userID uint, newParentID *uint) (*models.Folder, error)
	SoftDeleteFolder(id, userID uint) (*models.Folder, error)
	RestoreFolder(id, userID uint) (*models.Folder, error)
	ListChildren(userID uint, parentID *uint, page, limit int) ([]models.Folder, int, error)
}

type folderServiceImpl struct {
	folderRepo  repository.FolderRepository
	permissions PermissionService
}

func NewFolderService(folderRepo repository.FolderRepository, permissions PermissionService) FolderService {
	return &folderServiceImpl{folderRepo: folderRepo, permissions: permissions}
}

func (s *folderServiceImpl) CreateFolder(name string, userID uint, parentID *uint) (*models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "folder name is required")
	}

	parentPath := ""
	if parentID != nil {
		parent, err := s.folderRepo.FindByID(*parentID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStore, err)
		}
		if parent == nil {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "parent folder not found")
		}
		parentPath = parent.Path
	}

	folder := &models.Folder{
		Name:     name,
		Path:     helpers.ComposePath(parentPath, name),
		ParentID: parentID,
		UserID:   userID,
	}
	if err := s.folderRepo.CreateWithOwner(folder); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return folder, nil
}

func (s *folderServiceImpl) GetFolderByID(id uint) (*models.Folder, error) {
	folder, err := s.folderRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	if folder == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "folder not found")
	}
	return folder, nil
}

// RenameFolder updates the display name only. The materialized path keeps
// the creation-derived segment, so path-based descendant queries see the old
// segment after a rename.
func (s *folderServiceImpl) RenameFolder(id, userID uint, name string) (*models.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "folder name is required")
	}
	if err := s.permissions.Authorize(models.ItemTypeFolder, id, userID, models.RoleEdit); err != nil {
		return nil, err
	}
	folder, err := s.GetFolderByID(id)
	if err != nil {
		return nil, err
	}
	folder.Name = name
	if err := s.folderRepo.Update(folder); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return folder, nil
}

// MoveFolder reparents the folder and re-paths its whole subtree. The
// folder keeps its own path segment; only the ancestor prefix changes.
// Moving to root strips the prefix entirely.
func (s *folderServiceImpl) MoveFolder(id, userID uint, newParentID *uint) (*models.Folder, error) {
	if err := s.permissions.Authorize(models.ItemTypeFolder, id, userID, models.RoleEdit); err != nil {
		return nil, err
	}
	folder, err := s.GetFolderByID(id)
	if err != nil {
		return nil, err
	}

	parentPath := ""
	if newParentID != nil {
		if *newParentID == id {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "cannot move a folder into itself")
		}
		parent, err := s.folderRepo.FindByID(*newParentID)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStore, err)
		}
		if parent == nil {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "target folder not found")
		}
		// A target inside the moved subtree would orphan the chain into a
		// parent cycle.
		if strings.HasPrefix(parent.Path, folder.Path+".") {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "cannot move a folder into its own subtree")
		}
		parentPath = parent.Path
	}

	ownSegment := folder.Path
	if i := strings.LastIndex(folder.Path, "."); i >= 0 {
		ownSegment = folder.Path[i+1:]
	}
	newPath := ownSegment
	if parentPath != "" {
		newPath = parentPath + "." + ownSegment
	}

	if err := s.folderRepo.MoveSubtree(folder, newParentID, newPath); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return folder, nil
}

func (s *folderServiceImpl) SoftDeleteFolder(id, userID uint) (*models.Folder, error) {
	if err := s.permissions.Authorize(models.ItemTypeFolder, id, userID, models.RoleOwner); err != nil {
		return nil, err
	}
	folder, err := s.GetFolderByID(id)
	if err != nil {
		return nil, err
	}
	// Repeating a delete is a no-op; visibility of children is unaffected.
	now := time.Now().UTC()
	if err := s.folderRepo.SetDeletedAt(id, &now); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	folder.DeletedAt = &now
	return folder, nil
}

func (s *folderServiceImpl) RestoreFolder(id, userID uint) (*models.Folder, error) {
	if err := s.permissions.Authorize(models.ItemTypeFolder, id, userID, models.RoleOwner); err != nil {
		return nil, err
	}
	folder, err := s.GetFolderByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.folderRepo.SetDeletedAt(id, nil); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	folder.DeletedAt = nil
	return folder, nil
}

// ListChildren returns one level of live subfolders, newest first. The
// second return value is the effective limit after clamping.
func (s *folderServiceImpl) ListChildren(userID uint, parentID *uint, page, limit int) ([]models.Folder, int, error) {
	l, offset := helpers.OffsetWindow(page, limit)
	folders, err := s.folderRepo.FindChildren(userID, parentID, l, offset)
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return folders, l, nil
}
