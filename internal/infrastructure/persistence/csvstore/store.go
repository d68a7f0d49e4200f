package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/oasis00-1/oasis-springs-app/internal/config"
	"github.com/oasis00-1/oasis-springs-app/internal/domain/order"
)

// Store persists order records in a flat comma-separated file. Appends
// follow the store contract: create with header on first write, then
// read everything, add the row and rewrite the file in full. The mutex
// serializes in-process writers; without it two appends could interleave
// their read-modify-write cycles and silently drop a record.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(cfg config.StoreConfig) *Store {
	return &Store{path: cfg.Path}
}

func (s *Store) Append(ctx context.Context, rec *order.Record) error {
	if rec == nil {
		return fmt.Errorf("record is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil && !errors.Is(err, order.ErrNoOrders) {
		return fmt.Errorf("read store: %w", err)
	}
	existing = append(existing, *rec)

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	if err := WriteRecords(f, existing); err != nil {
		f.Close()
		return fmt.Errorf("write store: %w", err)
	}
	return f.Close()
}

// Load reads every record in the store. A missing file is the "no data"
// state, reported as order.ErrNoOrders.
func (s *Store) Load(ctx context.Context) ([]order.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]order.Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, order.ErrNoOrders
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}
	if len(rows) <= 1 {
		return []order.Record{}, nil
	}

	recs := make([]order.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rec, ok := decodeRow(row); ok {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}
