package services

import (
	"Vaulted/internal/apperrors"
	"Vaulted/internal/helpers"
	"Vaulted/internal/models"
	"Vaulted/internal/repository"
	"strings"
)

// SearchService runs a free-text name query over a user's live files and
// folders, each paginated independently.
type SearchService interface {
	Search(userID uint, query string, page, limit int) ([]models.File, []models.Folder, int, error)
}

type searchServiceImpl struct {
	fileRepo   repository.FileRepository
	folderRepo repository.FolderRepository
}

func NewSearchService(fileRepo repository.FileRepository, folderRepo repository.FolderRepository) SearchService {
	return &searchServiceImpl{fileRepo: fileRepo, folderRepo: folderRepo}
}

func (s *searchServiceImpl) Search(userID uint, query string, page, limit int) ([]models.File, []models.Folder, int, error) {
	l, offset := helpers.OffsetWindow(page, limit)

	// An empty query never touches the store.
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.File{}, []models.Folder{}, l, nil
	}

	files, err := s.fileRepo.SearchByName(userID, q, l, offset)
	if err != nil {
		return nil, nil, 0, apperrors.Wrap(apperrors.ErrStore, err)
	}
	folders, err := s.folderRepo.SearchByName(userID, q, l, offset)
	if err != nil {
		return nil, nil, 0, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return files, folders, l, nil
}
