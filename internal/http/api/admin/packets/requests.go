package packets

import "github.com/google/uuid"

// ReorderSlidesRequest lists a row's slide ids in their new order.
type ReorderSlidesRequest struct {
	SlideIDs []uuid.UUID `json:"slide_ids" binding:"required"`
}

// ReorderRowsRequest lists row ids in their new order.
type ReorderRowsRequest struct {
	RowIDs []uuid.UUID `json:"row_ids" binding:"required"`
}
