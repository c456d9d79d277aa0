package models

import (
	"time"
)

// Folder is a node in a per-user tree. Path is the materialized chain of
// sanitized segment names from root to this folder, dot-separated.
type Folder struct {
	BaseModel
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Path      string     `gorm:"type:text;not null;index" json:"path"`
	ParentID  *uint      `gorm:"index" json:"parent_id,omitempty"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
