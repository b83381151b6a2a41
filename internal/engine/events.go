package engine

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionSnoozed       Action = "snoozed"
	ActionRepublished   Action = "republished"
	ActionReordered     Action = "reordered"
	ActionRowsReordered Action = "rows_reordered"
)

// RowEvent describes one committed mutation. RowID is uuid.Nil when the row
// collection itself was reordered.
type RowEvent struct {
	RowID    uuid.UUID   `json:"row_id"`
	Action   Action      `json:"action"`
	SlideIDs []uuid.UUID `json:"slide_ids,omitempty"`
	At       time.Time   `json:"at"`
}
