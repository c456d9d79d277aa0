package services

import (
	"Vaulted/internal/apperrors"
	"Vaulted/internal/config"
	"Vaulted/internal/helpers"
	"Vaulted/internal/models"
	"Vaulted/internal/repository"
	"Vaulted/internal/storage"
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileService owns the file lifecycle. Bytes go to the blob store, metadata
// and the owner grant go to the relational store.
type FileService interface {
	Upload(ctx context.Context, userID uint, folderID *uint, fileHeader *multipart.FileHeader) (*models.File, error)
	SignedURL(ctx context.Context, id, userID uint) (string, int, error)
	RenameFile(id, userID uint, name string) (*models.File, error)
	MoveFile(id, userID uint, folderID *uint) (*models.File, error)
	SoftDeleteFile(id, userID uint) (*models.File, error)
	RestoreFile(id, userID uint) (*models.File, error)
	ListFiles(userID uint, folderID *uint, page, limit int) ([]models.File, int, error)
	ListFilesKeyset(userID uint, folderID *uint, cursorToken string, limit int) ([]models.File, string, error)
}

type fileServiceImpl struct {
	fileRepo      repository.FileRepository
	permissions   PermissionService
	blobStore     storage.BlobStore
	configuration *config.Configuration
	logService    LogService
}

func NewFileService(
	fileRepo repository.FileRepository,
	permissions PermissionService,
	blobStore storage.BlobStore,
	logService LogService,
	configuration *config.Configuration,
) FileService {
	return &fileServiceImpl{
		fileRepo:      fileRepo,
		permissions:   permissions,
		blobStore:     blobStore,
		logService:    logService,
		configuration: configuration,
	}
}

// Upload stores the bytes first, then the metadata row and owner grant in
// one transaction. A failure between the two can leave an orphaned blob;
// the janitor has no handle on it, so the error is logged loudly instead.
func (s *fileServiceImpl) Upload(ctx context.Context, userID uint, folderID *uint, fileHeader *multipart.FileHeader) (*models.File, error) {
	if fileHeader == nil {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "no file uploaded")
	}

	data, checksum, err := helpers.ReadUploadAndChecksum(fileHeader)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	storagePath := fmt.Sprintf("%d/%s_%s", userID, uuid.NewString(), fileHeader.Filename)

	if err := s.blobStore.Put(ctx, storagePath, data, mimeType); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}

	file := &models.File{
		Name:          fileHeader.Filename,
		UserID:        userID,
		FolderID:      folderID,
		StorageBucket: s.blobStore.Bucket(),
		StoragePath:   storagePath,
		Size:          fileHeader.Size,
		MimeType:      mimeType,
		Checksum:      checksum,
	}
	if err := s.fileRepo.CreateWithOwner(file); err != nil {
		s.logService.Log.WithField("storage_path", storagePath).
			Error("file metadata insert failed after blob write, blob is orphaned")
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return file, nil
}

// SignedURL mints a time-limited retrieval URL. Any role on the file grants
// read access. The URL is never persisted.
func (s *fileServiceImpl) SignedURL(ctx context.Context, id, userID uint) (string, int, error) {
	if err := s.permissions.Authorize(models.ItemTypeFile, id, userID, models.RoleView); err != nil {
		return "", 0, err
	}
	file, err := s.getFile(id)
	if err != nil {
		return "", 0, err
	}
	expires := s.configuration.Storage.SignURLExpires
	url, err := s.blobStore.SignURL(ctx, file.StoragePath, time.Duration(expires)*time.Second)
	if err != nil {
		return "", 0, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return url, expires, nil
}

func (s *fileServiceImpl) RenameFile(id, userID uint, name string) (*models.File, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "file name is required")
	}
	if err := s.permissions.Authorize(models.ItemTypeFile, id, userID, models.RoleEdit); err != nil {
		return nil, err
	}
	file, err := s.getFile(id)
	if err != nil {
		return nil, err
	}
	file.Name = name
	if err := s.fileRepo.Update(file); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return file, nil
}

func (s *fileServiceImpl) MoveFile(id, userID uint, folderID *uint) (*models.File, error) {
	if err := s.permissions.Authorize(models.ItemTypeFile, id, userID, models.RoleEdit); err != nil {
		return nil, err
	}
	file, err := s.getFile(id)
	if err != nil {
		return nil, err
	}
	if err := s.fileRepo.SetFolderID(id, folderID); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	file.FolderID = folderID
	return file, nil
}

func (s *fileServiceImpl) SoftDeleteFile(id, userID uint) (*models.File, error) {
	if err := s.permissions.Authorize(models.ItemTypeFile, id, userID, models.RoleOwner); err != nil {
		return nil, err
	}
	file, err := s.getFile(id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err := s.fileRepo.SetDeletedAt(id, &now); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	file.DeletedAt = &now
	return file, nil
}

func (s *fileServiceImpl) RestoreFile(id, userID uint) (*models.File, error) {
	if err := s.permissions.Authorize(models.ItemTypeFile, id, userID, models.RoleOwner); err != nil {
		return nil, err
	}
	file, err := s.getFile(id)
	if err != nil {
		return nil, err
	}
	if err := s.fileRepo.SetDeletedAt(id, nil); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	file.DeletedAt = nil
	return file, nil
}

func (s *fileServiceImpl) ListFiles(userID uint, folderID *uint, page, limit int) ([]models.File, int, error) {
	l, offset := helpers.OffsetWindow(page, limit)
	files, err := s.fileRepo.ListByFolder(userID, folderID, l, offset)
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return files, l, nil
}

// ListFilesKeyset pages by cursor. The returned token points at the last row
// of this page and is empty when the page is empty (end of results).
func (s *fileServiceImpl) ListFilesKeyset(userID uint, folderID *uint, cursorToken string, limit int) ([]models.File, string, error) {
	cursor := helpers.DecodeCursor(cursorToken)
	files, err := s.fileRepo.ListByFolderKeyset(userID, folderID, cursor, helpers.ClampLimit(limit))
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrStore, err)
	}
	if len(files) == 0 {
		return files, "", nil
	}
	last := files[len(files)-1]
	next := helpers.EncodeCursor(helpers.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	return files, next, nil
}

func (s *fileServiceImpl) getFile(id uint) (*models.File, error) {
	file, err := s.fileRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	if file == nil {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "file not found")
	}
	return file, nil
}
