// Package lnbits implements the LNbits wallet-service client and the
// normalization of its payment records into canonical transactions.
package lnbits

import (
	"github.com/NataliaMilgevskaya/Zapp.ie/internal/model"
	"github.com/NataliaMilgevskaya/Zapp.ie/pkg/safe"
)

// msatPerSat converts LNbits millisat amounts to the canonical sat unit.
const msatPerSat = 1000

// ActorResolver maps an LNbits user id to a display name. A false
// return means the actor is unknown; the transaction is kept with the
// actor left unresolved.
type ActorResolver func(userID string) (string, bool)

// PaymentToTransaction maps a raw payment record into the canonical
// transaction model. Amounts are converted to sats exactly once here,
// sign preserved (negative = sent). Records missing an identifier,
// amount or carrying an unusable timestamp are rejected with a
// ValidationError; actor resolution misses are not errors.
func PaymentToTransaction(p Payment, resolve ActorResolver) (model.Transaction, error) {
	id := p.ID
	if id == "" {
		id = p.CheckingID
	}
	if id == "" {
		return model.Transaction{}, &ValidationError{Field: "id", Reason: "is missing"}
	}
	if p.Amount == nil {
		return model.Transaction{}, &ValidationError{Field: "amount", Reason: "is missing"}
	}

	occurredAt, err := safe.Int64FromFloat(p.Time)
	if err != nil {
		return model.Transaction{}, &ValidationError{Field: "time", Reason: err.Error()}
	}

	return model.Transaction{
		ID:           id,
		Reference:    p.Bolt11,
		FromActor:    resolveActor(p.Extra, resolve, true),
		ToActor:      resolveActor(p.Extra, resolve, false),
		Memo:         p.Memo,
		Amount:       *p.Amount / msatPerSat,
		SourceWallet: p.WalletID,
		OccurredAt:   occurredAt,
	}, nil
}

func resolveActor(extra *PaymentExtra, resolve ActorResolver, from bool) string {
	if extra == nil || resolve == nil {
		return ""
	}
	ref := extra.To
	if from {
		ref = extra.From
	}
	if ref == nil || ref.ID == "" {
		return ""
	}
	name, ok := resolve(ref.ID)
	if !ok {
		return ""
	}
	return name
}
