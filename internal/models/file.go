package models

import (
	"time"
)

// File is a leaf object. The bytes live in the blob store under
// StorageBucket/StoragePath; this row owns only the metadata.
type File struct {
	BaseModel
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	FolderID      *uint      `gorm:"index" json:"folder_id,omitempty"`
	StorageBucket string     `gorm:"type:varchar(255);not null" json:"storage_bucket"`
	StoragePath   string     `gorm:"type:text;not null" json:"storage_path"`
	Size          int64      `gorm:"default:0" json:"size"`
	MimeType      string     `gorm:"type:varchar(255)" json:"mime_type"`
	Checksum      string     `gorm:"type:char(64)" json:"checksum,omitempty"`
	DeletedAt     *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
