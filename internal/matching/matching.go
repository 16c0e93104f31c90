package matching

import (
	"time"

	"github.com/google/uuid"
)

// Rule files statement lines whose raw description contains RawPattern under
// CategoryID, optionally renaming them to Description.
type Rule struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	RawPattern  string
	CategoryID  uuid.UUID
	Description string
	CreatedAt   time.Time
}

type LearnParams struct {
	RawPattern  string
	CategoryID  uuid.UUID
	Description string
}
