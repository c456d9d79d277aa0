package models

import (
	"time"
)

// ShareLink is a bearer capability on one item. The token is unguessable and
// never reissued; once revoked or expired the link is dead for good.
type ShareLink struct {
	BaseModel
	ItemType  string     `gorm:"type:varchar(50);not null" json:"item_type"`
	ItemID    uint       `gorm:"not null" json:"item_id"`
	Token     string     `gorm:"type:varchar(64);not null;unique" json:"token"`
	Role      Role       `gorm:"type:varchar(50);not null" json:"role"`
	CreatedBy uint       `gorm:"not null" json:"created_by"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Expired reports whether the link has a deadline in the past.
func (l *ShareLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}

func (l *ShareLink) Revoked() bool {
	return l.RevokedAt != nil
}
