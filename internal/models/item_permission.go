package models

const (
	ItemTypeFolder = "folder"
	ItemTypeFile   = "file"
)

// ItemPermission grants a single role on a single item to a single user.
// Permissions are not inherited through the folder tree; every item carries
// its own grants.
type ItemPermission struct {
	BaseModel
	ItemType string `gorm:"type:varchar(50);not null;uniqueIndex:idx_item_user" json:"item_type"`
	ItemID   uint   `gorm:"not null;uniqueIndex:idx_item_user" json:"item_id"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_item_user" json:"user_id"`
	Role     Role   `gorm:"type:varchar(50);not null" json:"role"`
}
