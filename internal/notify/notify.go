// Package notify fans committed row changes out to screens and subscribers.
package notify

import (
	"context"
	"errors"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
)

// Multi sends every event to each notifier and joins their errors.
type Multi []engine.Notifier

func (m Multi) RowChanged(ctx context.Context, ev engine.RowEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.RowChanged(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
