package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/oasis00-1/oasis-springs-app/internal/domain/order"
	"github.com/oasis00-1/oasis-springs-app/internal/domain/repository"
	"github.com/oasis00-1/oasis-springs-app/internal/infrastructure/persistence/csvstore"
)

// LocationAll disables the location filter.
const LocationAll = "All"

// Filter narrows the order set. Zero values are no-ops: an empty name
// matches everything, an empty or "All" location matches everything and
// zero From/To leave the date range open on that side.
type Filter struct {
	Name     string
	Location string
	From     time.Time
	To       time.Time
}

// Summary aggregates a filtered subset.
type Summary struct {
	Orders          int
	TotalSales      int
	UniqueCustomers int
}

type Service struct {
	store repository.OrderStore
}

func NewService(store repository.OrderStore) *Service {
	return &Service{store: store}
}

// Query loads the store, applies the filter and returns the subset
// sorted by date descending together with its aggregates. An absent
// store surfaces as order.ErrNoOrders so callers can show the
// informational "no data" state.
func (s *Service) Query(ctx context.Context, f Filter) ([]order.Record, Summary, error) {
	recs, err := s.store.Load(ctx)
	if err != nil {
		return nil, Summary{}, err
	}

	filtered := make([]order.Record, 0, len(recs))
	for _, rec := range recs {
		if f.matches(rec) {
			filtered = append(filtered, rec)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return filtered, summarize(filtered), nil
}

// Export re-encodes the filtered subset in the store's flat format so a
// reload reproduces the same rows.
func (s *Service) Export(ctx context.Context, f Filter, w io.Writer) error {
	recs, _, err := s.Query(ctx, f)
	if err != nil {
		return err
	}
	if err := csvstore.WriteRecords(w, recs); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

func (f Filter) matches(rec order.Record) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(rec.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Location != "" && f.Location != LocationAll && rec.Location != f.Location {
		return false
	}
	if !f.From.IsZero() || !f.To.IsZero() {
		// Records whose date failed to parse carry the zero sentinel and
		// never match a range filter.
		if rec.Date.IsZero() {
			return false
		}
		if !f.From.IsZero() && rec.Date.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && rec.Date.After(f.To) {
			return false
		}
	}
	return true
}

func summarize(recs []order.Record) Summary {
	sum := Summary{Orders: len(recs)}
	customers := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		sum.TotalSales += rec.Total
		customers[rec.Name] = struct{}{}
	}
	sum.UniqueCustomers = len(customers)
	return sum
}
