package dto

import (
	"Vaulted/internal/models"
)

// ShareResolution is what a bearer gets back for a valid token: a signed URL
// for a file link, or one level of children for a folder link.
type ShareResolution struct {
	Type       string          `json:"type"`
	Role       models.Role     `json:"role"`
	URL        string          `json:"url,omitempty"`
	Name       string          `json:"name,omitempty"`
	MimeType   string          `json:"mime_type,omitempty"`
	Size       int64           `json:"size,omitempty"`
	Folder     *FolderSummary  `json:"folder,omitempty"`
	Subfolders []FolderSummary `json:"subfolders,omitempty"`
	Files      []FileSummary   `json:"files,omitempty"`
}

type FolderSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

type FileSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mime_type"`
	CreatedAt string `json:"created_at,omitempty"`
}
