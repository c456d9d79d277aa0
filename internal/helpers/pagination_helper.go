package helpers

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

const (
	MaxPageSize     = 200
	DefaultPageSize = 50
)

// OffsetWindow turns a 1-based page and requested limit into a clamped
// (limit, offset) pair. Callers must still order by (created_at DESC, id DESC)
// for stable paging.
func OffsetWindow(page, limit int) (int, int) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// ClampLimit bounds a keyset page size to [1, MaxPageSize], substituting the
// default for non-positive values.
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// Cursor marks the last row of a keyset page. The next page holds rows
// strictly after it in (created_at DESC, id DESC) order.
type Cursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        uint      `json:"id"`
}

// EncodeCursor serializes a cursor to an opaque URL-safe token.
func EncodeCursor(c Cursor) string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor reverses EncodeCursor. Absent, malformed or tampered tokens
// decode to nil, meaning "start from the beginning"; it never fails.
func DecodeCursor(token string) *Cursor {
	if token == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	if c.ID == 0 && c.CreatedAt.IsZero() {
		return nil
	}
	return &c
}
