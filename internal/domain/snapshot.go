package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the single persisted copy of a user's resume document. One row
// per user, last-write-wins; no versioning and no conflict resolution. The
// payload is stored as raw JSON so the import normalizer, not the storage
// layer, decides what to do with whatever shape comes back.
type Snapshot struct {
	UserID    uuid.UUID       `json:"user_id"`
	Document  json.RawMessage `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
