package model

import "github.com/google/uuid"

// Collection names something whose members carry a display order: either
// the slides of one row, or the set of rows itself.
type Collection struct {
	RowID uuid.UUID
}

// RowsCollection is the collection of all rows.
func RowsCollection() Collection { return Collection{} }

// SlidesOf is the collection of slides owned by row.
func SlidesOf(row uuid.UUID) Collection { return Collection{RowID: row} }

// IsRows reports whether c is the row collection.
func (c Collection) IsRows() bool { return c.RowID == uuid.Nil }

func (c Collection) String() string {
	if c.IsRows() {
		return "rows"
	}
	return "row:" + c.RowID.String()
}
