package repository

import (
	"context"

	"github.com/oasis00-1/oasis-springs-app/internal/domain/order"
)

// OrderStore is the append-only store shared by the intake and the
// reporting flows. Append must serialize concurrent writers; Load
// returns order.ErrNoOrders when nothing has been recorded yet.
type OrderStore interface {
	Append(ctx context.Context, rec *order.Record) error
	Load(ctx context.Context) ([]order.Record, error)
}
