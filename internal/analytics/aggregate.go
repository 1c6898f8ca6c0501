package analytics

import (
	"sort"

	"github.com/NataliaMilgevskaya/Zapp.ie/internal/model"
)

const secondsPerDay = 24 * 60 * 60

// Snapshot recomputes the aggregate statistics from scratch over the
// full transaction set. Only outbound transactions (negative amount)
// feed the statistics; an empty outbound set yields all zeros rather
// than NaN or infinity.
func (s *Session) Snapshot() model.AggregateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return computeSnapshot(s.all, s.now().Unix())
}

// Actors returns the distinct resolved senders among outbound
// transactions, sorted for stable presentation.
func (s *Session) Actors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return outboundActors(s.all)
}

func computeSnapshot(txs []model.Transaction, nowUnix int64) model.AggregateSnapshot {
	var (
		total    int64
		largest  int64
		earliest int64
		haveOut  bool
	)
	for _, tx := range txs {
		if !tx.Outbound() {
			continue
		}
		amount := -tx.Amount
		total += amount
		if amount > largest {
			largest = amount
		}
		if !haveOut || tx.OccurredAt < earliest {
			earliest = tx.OccurredAt
		}
		haveOut = true
	}

	actors := outboundActors(txs)

	snap := model.AggregateSnapshot{
		TotalOutbound:      total,
		LargestOutbound:    largest,
		DistinctActorCount: len(actors),
		Actors:             actors,
	}

	// No outbound transactions: the window starts now, elapsedDays is 0.
	if !haveOut {
		earliest = nowUnix
	}
	elapsedDays := float64(nowUnix-earliest) / secondsPerDay
	if elapsedDays > 0 {
		snap.AveragePerDay = float64(total) / elapsedDays
	}
	if len(actors) > 0 {
		snap.AveragePerActor = float64(total) / float64(len(actors))
	}
	return snap
}

func outboundActors(txs []model.Transaction) []string {
	set := make(map[string]struct{})
	for _, tx := range txs {
		if tx.Outbound() && tx.FromActor != "" {
			set[tx.FromActor] = struct{}{}
		}
	}
	actors := make([]string, 0, len(set))
	for actor := range set {
		actors = append(actors, actor)
	}
	sort.Strings(actors)
	return actors
}
