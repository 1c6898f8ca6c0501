package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/NataliaMilgevskaya/Zapp.ie/internal/clock"
	"github.com/NataliaMilgevskaya/Zapp.ie/internal/lnbits"
	"github.com/NataliaMilgevskaya/Zapp.ie/internal/model"
	"github.com/NataliaMilgevskaya/Zapp.ie/pkg/batcher"
	"github.com/NataliaMilgevskaya/Zapp.ie/pkg/workerpool"
)

const (
	defaultWorkerCount = 4

	defaultScanInterval = time.Minute
	errorBackoff        = 5 * time.Second

	txFlushSize     = 500
	txFlushInterval = time.Second
	txFlushRPS      = 10
)

// ZapIngesterService periodically scans every LNbits wallet, normalizes
// the returned payments and feeds them into the analytics session.
type ZapIngesterService struct {
	api     PaymentsAPI
	buffer  TransactionBuffer
	metrics ZapIngesterMetrics
	logger  *zap.Logger

	walletFilter string
	adminKey     string
	scanInterval time.Duration
	workerCount  int

	sleep func(ctx context.Context, d time.Duration) error
}

// NewZapIngesterService builds the ingester with the provided dependencies.
// Normalized transactions are buffered and delivered to sink in batches.
func NewZapIngesterService(
	api PaymentsAPI,
	sink TransactionSink,
	metrics ZapIngesterMetrics,
	walletFilter string,
	adminKey string,
	scanInterval time.Duration,
	logger *zap.Logger,
) *ZapIngesterService {
	if scanInterval <= 0 {
		scanInterval = defaultScanInterval
	}

	return &ZapIngesterService{
		api:     api,
		metrics: metrics,
		logger:  logger,
		buffer: batcher.New[model.Transaction](
			logger.Named("txBatcher"),
			batcher.Config{
				FlushSize:     txFlushSize,
				FlushInterval: txFlushInterval,
				RPS:           txFlushRPS,
			},
			func(_ context.Context, txs []model.Transaction) error {
				metrics.AddIngested(sink.Ingest(txs))
				return nil
			},
		),
		walletFilter: walletFilter,
		adminKey:     adminKey,
		scanInterval: scanInterval,
		workerCount:  defaultWorkerCount,
		sleep:        clock.Sleep,
	}
}

// Run scans wallets until the context is canceled. A failed cycle is
// logged and retried after a short backoff; it never stops the loop.
func (s *ZapIngesterService) Run(ctx context.Context) error {
	s.buffer.Start(ctx)
	defer s.buffer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.scan(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.Error("scan cycle failed", zap.Error(err), zap.Duration("backoff", errorBackoff))
			if err := s.sleep(ctx, errorBackoff); err != nil {
				return err
			}
			continue
		}

		if err := s.sleep(ctx, s.scanInterval); err != nil {
			return err
		}
	}
}

func (s *ZapIngesterService) scan(ctx context.Context) error {
	started := time.Now()

	resolve := s.actorResolver(ctx)

	wallets, err := s.api.GetWallets(ctx, s.walletFilter)
	if err != nil {
		s.metrics.ObserveScanCycle(err, 0, started)
		return fmt.Errorf("list wallets: %w", err)
	}

	err = workerpool.Process(ctx, s.workerCount, wallets, func(ctx context.Context, wallet model.Wallet) error {
		return s.scanWallet(ctx, wallet, resolve)
	})
	s.metrics.ObserveScanCycle(err, len(wallets), started)
	if err != nil {
		return fmt.Errorf("scan wallets: %w", err)
	}

	s.logger.Debug("scan cycle completed",
		zap.Int("wallet_count", len(wallets)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// scanWallet fetches one wallet's payments and queues the valid ones.
// A fetch failure is contained so the remaining wallets still get
// scanned; only buffer delivery errors abort the cycle.
func (s *ZapIngesterService) scanWallet(ctx context.Context, wallet model.Wallet, resolve lnbits.ActorResolver) error {
	started := time.Now()

	payments, err := s.api.GetPaymentsSince(ctx, wallet.Inkey, 0)
	s.metrics.ObserveScanWallet(err, started)
	if err != nil {
		s.logger.Error("wallet scan failed",
			zap.String("wallet_id", wallet.ID),
			zap.Error(err),
		)
		return nil
	}

	rejected := 0
	for _, payment := range payments {
		tx, err := lnbits.PaymentToTransaction(payment, resolve)
		if err != nil {
			var verr *lnbits.ValidationError
			if !errors.As(err, &verr) {
				return fmt.Errorf("wallet %s: %w", wallet.ID, err)
			}
			rejected++
			s.logger.Warn("dropping malformed payment",
				zap.String("wallet_id", wallet.ID),
				zap.Error(err),
			)
			continue
		}
		if tx.SourceWallet == "" {
			tx.SourceWallet = wallet.ID
		}
		if err := s.buffer.Add(ctx, tx); err != nil {
			return err
		}
	}
	if rejected > 0 {
		s.metrics.AddRejected(rejected)
	}

	return nil
}

// actorResolver loads the user directory once per cycle. When the
// directory is unavailable the scan still proceeds with every actor
// left unresolved.
func (s *ZapIngesterService) actorResolver(ctx context.Context) lnbits.ActorResolver {
	users, err := s.api.GetUsers(ctx, s.adminKey, nil)
	if err != nil {
		s.logger.Warn("user directory unavailable; actors stay unresolved", zap.Error(err))
		return func(string) (string, bool) { return "", false }
	}

	byID := make(map[string]string, len(users))
	for _, user := range users {
		if user.DisplayName != "" {
			byID[user.ID] = user.DisplayName
		}
	}
	return func(userID string) (string, bool) {
		name, ok := byID[userID]
		return name, ok
	}
}
