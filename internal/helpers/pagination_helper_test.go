package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOffsetWindow(t *testing.T) {
	limit, offset := OffsetWindow(1, 50)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 0, offset)

	limit, offset = OffsetWindow(3, 25)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
}

func TestOffsetWindow_Clamps(t *testing.T) {
	limit, offset := OffsetWindow(2, 1000)
	assert.Equal(t, MaxPageSize, limit)
	assert.Equal(t, MaxPageSize, offset)

	limit, offset = OffsetWindow(0, 0)
	assert.Equal(t, 1, limit)
	assert.Equal(t, 0, offset)

	limit, offset = OffsetWindow(-4, -10)
	assert.Equal(t, 1, limit)
	assert.Equal(t, 0, offset)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultPageSize, ClampLimit(0))
	assert.Equal(t, DefaultPageSize, ClampLimit(-1))
	assert.Equal(t, 50, ClampLimit(50))
	assert.Equal(t, MaxPageSize, ClampLimit(201))
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 30, 45, 123456789, time.UTC)
	original := Cursor{CreatedAt: created, ID: 42}

	decoded := DecodeCursor(EncodeCursor(original))

	assert.NotNil(t, decoded)
	assert.True(t, decoded.CreatedAt.Equal(created))
	assert.Equal(t, uint(42), decoded.ID)
}

func TestDecodeCursor_Malformed(t *testing.T) {
	assert.Nil(t, DecodeCursor(""))
	assert.Nil(t, DecodeCursor("not base64!!"))
	assert.Nil(t, DecodeCursor("aGVsbG8")) // valid base64, not JSON
	assert.Nil(t, DecodeCursor("e30"))     // "{}": no cursor fields
}
