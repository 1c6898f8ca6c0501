// Package service orchestrates the periodic wallet scan that feeds the
// analytics session.
package service

import (
	"context"
	"time"

	"github.com/NataliaMilgevskaya/Zapp.ie/internal/lnbits"
	"github.com/NataliaMilgevskaya/Zapp.ie/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PaymentsAPI is the slice of the LNbits client the ingester needs.
	PaymentsAPI interface {
		GetWallets(ctx context.Context, filterByName string) ([]model.Wallet, error)
		GetUsers(ctx context.Context, adminKey string, extraFilter map[string]string) ([]model.User, error)
		GetPaymentsSince(ctx context.Context, inkey string, since int64) ([]lnbits.Payment, error)
	}

	// TransactionSink receives normalized transactions. Ingest returns
	// how many of the records were new.
	TransactionSink interface {
		Ingest(txs []model.Transaction) int
	}

	// TransactionBuffer batches normalized transactions before they
	// reach the sink.
	TransactionBuffer interface {
		Start(ctx context.Context)
		Stop()
		Add(ctx context.Context, tx model.Transaction) error
	}

	// ZapIngesterMetrics records metrics for the ingestion loop.
	ZapIngesterMetrics interface {
		ObserveScanCycle(err error, wallets int, started time.Time)
		ObserveScanWallet(err error, started time.Time)
		AddIngested(count int)
		AddRejected(count int)
	}
)
