package packets

import (
	"time"

	"github.com/google/uuid"

	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

type SlideResponse struct {
	ID        uuid.UUID  `json:"id"`
	Kind      model.Kind `json:"kind"`
	Title     string     `json:"title"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RowSlidesResponse is what a screen renders for one row.
type RowSlidesResponse struct {
	RowID          uuid.UUID       `json:"row_id"`
	Name           string          `json:"name"`
	Rotated        bool            `json:"rotated"`
	Seed           *int64          `json:"seed,omitempty"`
	NextRotationAt *time.Time      `json:"next_rotation_at,omitempty"`
	Slides         []SlideResponse `json:"slides"`
}

type RowSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
}
