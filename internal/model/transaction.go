// Package model defines domain models for the zap dashboard.
package model

// Transaction is a canonical zap record after normalization.
// Amount is in sats; negative amounts are outbound (sent), positive
// inbound (received). FromActor/ToActor are empty when unresolved.
type Transaction struct {
	ID           string `json:"id"`
	Reference    string `json:"reference,omitempty"`
	FromActor    string `json:"fromActor,omitempty"`
	ToActor      string `json:"toActor,omitempty"`
	Memo         string `json:"memo,omitempty"`
	Amount       int64  `json:"amount"`
	SourceWallet string `json:"sourceWallet,omitempty"`
	OccurredAt   int64  `json:"occurredAt"`
}

// Outbound reports whether the transaction represents funds sent.
func (t Transaction) Outbound() bool {
	return t.Amount < 0
}

// SortKey selects the column a ranked view is ordered by.
type SortKey string

var (
	// SortByAmount orders the view by transaction amount.
	SortByAmount SortKey = "amount"
	// SortByTime orders the view by occurrence timestamp.
	SortByTime SortKey = "occurredAt"
)
