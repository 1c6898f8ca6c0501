// Package analytics maintains aggregate statistics and a ranked view
// over an in-memory zap transaction set.
package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/NataliaMilgevskaya/Zapp.ie/internal/model"
)

// Session owns a transaction set accumulated across ingest cycles and
// the derived projections over it. One writer appends; readers get
// copies. All methods are safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	now       func() time.Time
	all       []model.Transaction
	seen      map[string]struct{}
	view      []model.Transaction
	since     *int64
	active    model.SortKey
	ascending map[model.SortKey]bool
}

// NewSession returns an empty session. The amount column toggles to
// ascending first; the time column starts most-recent-first.
func NewSession() *Session {
	return &Session{
		now:  time.Now,
		seen: make(map[string]struct{}),
		ascending: map[model.SortKey]bool{
			model.SortByAmount: true,
			model.SortByTime:   false,
		},
	}
}

// Ingest appends normalized transactions to the set. Records whose ID
// was already ingested are skipped, so redundant fetch cycles cannot
// inflate the aggregates. Returns the number of records actually added.
func (s *Session) Ingest(txs []model.Transaction) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, tx := range txs {
		if _, ok := s.seen[tx.ID]; ok {
			continue
		}
		s.seen[tx.ID] = struct{}{}
		s.all = append(s.all, tx)
		if s.since == nil || tx.OccurredAt >= *s.since {
			s.view = append(s.view, tx)
		}
		added++
	}
	return added
}

// Size returns the number of distinct transactions ingested.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.all)
}

// SortBy re-orders the current view by the given key using that key's
// remembered direction, marks the key active, then flips the direction
// so repeating the key reverses the order. Ties keep their prior
// relative order. Unknown keys leave the view untouched.
func (s *Session) SortBy(key model.SortKey) []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	asc, ok := s.ascending[key]
	if !ok {
		return copyView(s.view)
	}

	sort.SliceStable(s.view, func(i, j int) bool {
		a, b := sortValue(key, s.view[i]), sortValue(key, s.view[j])
		if asc {
			return a < b
		}
		return a > b
	})

	s.active = key
	s.ascending[key] = !asc
	return copyView(s.view)
}

// ApplyWindow narrows the view to transactions with occurredAt >= since
// and re-sorts it most-recent-first, forcing the time column into a
// known direction (next toggle ascends). A nil since restores the full
// set in insertion order without touching the toggle state.
func (s *Session) ApplyWindow(since *int64) []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	if since == nil {
		s.since = nil
		s.view = copyView(s.all)
		return copyView(s.view)
	}

	ts := *since
	s.since = &ts
	filtered := make([]model.Transaction, 0, len(s.all))
	for _, tx := range s.all {
		if tx.OccurredAt >= ts {
			filtered = append(filtered, tx)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].OccurredAt > filtered[j].OccurredAt
	})
	s.view = filtered
	s.active = model.SortByTime
	s.ascending[model.SortByTime] = true
	return copyView(s.view)
}

// ActiveSort reports which column the view is currently ordered by;
// empty until the first sort or window change.
func (s *Session) ActiveSort() model.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// View returns the current ranked sequence without changing any state.
func (s *Session) View() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyView(s.view)
}

func sortValue(key model.SortKey, tx model.Transaction) int64 {
	if key == model.SortByAmount {
		return tx.Amount
	}
	return tx.OccurredAt
}

func copyView(view []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(view))
	copy(out, view)
	return out
}
