package auditmock

import (
	"context"
	"sync"

	domain "fundraising-backend/internal/domain/audit"
)

var _ domain.Sink = (*Sink)(nil)

// Sink records every entry so tests can assert on the audit trail.
type Sink struct {
	mu      sync.Mutex
	Entries []domain.Entry
	// RecordFn, when set, overrides the default capture behavior.
	RecordFn func(ctx context.Context, e domain.Entry) error
}

func (m *Sink) Record(ctx context.Context, e domain.Entry) error {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, e)
	return nil
}

func (m *Sink) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Entries)
}

// Last returns the most recent entry; zero value when empty.
func (m *Sink) Last() domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Entries) == 0 {
		return domain.Entry{}
	}
	return m.Entries[len(m.Entries)-1]
}
