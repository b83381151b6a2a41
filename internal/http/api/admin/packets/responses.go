package packets

import (
	"time"

	"github.com/google/uuid"
)

type RowResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	DisplayOrder     int       `json:"display_order"`
	RotationEnabled  bool      `json:"rotation_enabled"`
	RotationCount    *int      `json:"rotation_count,omitempty"`
	RotationInterval *string   `json:"rotation_interval,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SnoozeResponse struct {
	SlideID uuid.UUID `json:"slide_id"`
	RowID   uuid.UUID `json:"row_id"`
	Until   time.Time `json:"temporary_unpublish_until"`
}

type RepublishResponse struct {
	RowID    uuid.UUID   `json:"row_id"`
	Count    int         `json:"count"`
	SlideIDs []uuid.UUID `json:"slide_ids"`
}

type ReorderResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
