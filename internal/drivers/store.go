package drivers

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/common"
)

// Store keeps driver records. There is no update or delete.
type Store interface {
	// CreateDriver inserts a record under a caller-generated id. Ids are
	// assumed unique; reusing one replaces the earlier record.
	CreateDriver(ctx context.Context, id string, f Fields) error
	// AppendLicense adds lic to the end of the driver's licence list, or
	// returns common.ErrNotFound and leaves the store untouched.
	AppendLicense(ctx context.Context, driverID string, lic License) error
	// Get returns a copy of the record or common.ErrNotFound.
	Get(ctx context.Context, id string) (Driver, error)
	// List returns copies of all records in creation order.
	List(ctx context.Context) ([]Driver, error)
}

// MemoryStore is a Store living as long as the process.
type MemoryStore struct {
	now func() time.Time

	mu      sync.RWMutex
	seq     int
	records map[string]*entry
}

type entry struct {
	seq    int
	driver Driver
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now, records: make(map[string]*entry)}
}

func (s *MemoryStore) CreateDriver(ctx context.Context, id string, f Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.records[id] = &entry{
		seq:    s.seq,
		driver: Driver{ID: id, CreatedAt: s.now(), Fields: f, Licenses: []License{}},
	}
	return nil
}

func (s *MemoryStore) AppendLicense(ctx context.Context, driverID string, lic License) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[driverID]
	if !ok {
		return fmt.Errorf("driver %s: %w", driverID, common.ErrNotFound)
	}
	e.driver.Licenses = append(e.driver.Licenses, lic)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Driver, error) {
	if err := ctx.Err(); err != nil {
		return Driver{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.records[id]
	if !ok {
		return Driver{}, fmt.Errorf("driver %s: %w", id, common.ErrNotFound)
	}
	return e.driver.clone(), nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	entries := make([]entry, 0, len(s.records))
	for _, e := range s.records {
		entries = append(entries, entry{seq: e.seq, driver: e.driver.clone()})
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]Driver, len(entries))
	for i, e := range entries {
		out[i] = e.driver
	}
	return out, nil
}
