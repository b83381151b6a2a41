package model

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSlide Kind = "slide"
	KindAudio Kind = "audio"
)

// Slide is a content item owned by exactly one row. Audio tracks share the
// same record with Kind set to KindAudio.
type Slide struct {
	ID                      uuid.UUID       `json:"id"`
	RowID                   uuid.UUID       `json:"row_id"`
	Kind                    Kind            `json:"kind"`
	Title                   string          `json:"title"`
	DisplayOrder            int             `json:"display_order"`
	InsertSeq               int64           `json:"insert_seq"`
	IsPublished             bool            `json:"is_published"`
	TemporaryUnpublishUntil *time.Time      `json:"temporary_unpublish_until,omitempty"`
	Schedule                *ScheduleWindow `json:"schedule,omitempty"`
	RandomEligible          bool            `json:"random_eligible"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}
