// Package pagination implements opaque keyset cursors over nightly scores.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned for cursors not produced by Encode.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor points at the last nightly score of a page. Pages are ordered by
// night key descending with the row id as tie-breaker.
type Cursor struct {
	ID       uuid.UUID `json:"id"`
	NightKey string    `json:"night_key"`
}

// Encode encodes the cursor to a URL-safe base64 string.
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor decodes a cursor produced by Encode. An empty string yields a
// nil cursor (first page).
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if cursor.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidCursor)
	}
	if _, err := time.Parse(time.DateOnly, cursor.NightKey); err != nil {
		return nil, fmt.Errorf("%w: night key %q", ErrInvalidCursor, cursor.NightKey)
	}

	return &cursor, nil
}

// NormalizeLimit clamps limit to [1, MaxLimit]; non-positive values get DefaultLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
