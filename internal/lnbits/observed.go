package lnbits

import (
	"context"
	"time"

	"github.com/NataliaMilgevskaya/Zapp.ie/internal/model"
)

type (
	// ClientMetrics records metrics for LNbits API calls.
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps Client with metrics instrumentation.
type ObservedClient struct {
	client        *Client
	clientMetrics ClientMetrics
}

// NewObservedClient constructs an instrumented LNbits client.
func NewObservedClient(client *Client, clientMetrics ClientMetrics) *ObservedClient {
	return &ObservedClient{
		client:        client,
		clientMetrics: clientMetrics,
	}
}

// GetWallets returns all non-deleted wallets matching the name filter.
func (o *ObservedClient) GetWallets(ctx context.Context, filterByName string) (wallets []model.Wallet, err error) {
	started := time.Now()
	defer func() {
		o.clientMetrics.Observe("get_wallets", err, started)
	}()
	return o.client.GetWallets(ctx, filterByName)
}

// GetUserWallets returns the non-deleted wallets belonging to a user.
func (o *ObservedClient) GetUserWallets(ctx context.Context, userID string) (wallets []model.Wallet, err error) {
	started := time.Now()
	defer func() {
		o.clientMetrics.Observe("get_user_wallets", err, started)
	}()
	return o.client.GetUserWallets(ctx, userID)
}

// GetUsers returns user-manager directory entries.
func (o *ObservedClient) GetUsers(ctx context.Context, adminKey string, extraFilter map[string]string) (users []model.User, err error) {
	started := time.Now()
	defer func() {
		o.clientMetrics.Observe("get_users", err, started)
	}()
	return o.client.GetUsers(ctx, adminKey, extraFilter)
}

// GetWalletBalance returns a wallet's balance in sats.
func (o *ObservedClient) GetWalletBalance(ctx context.Context, inkey string) (balance int64, err error) {
	started := time.Now()
	defer func() {
		o.clientMetrics.Observe("get_wallet_balance", err, started)
	}()
	return o.client.GetWalletBalance(ctx, inkey)
}

// GetPaymentsSince fetches recent payments newer than the timestamp.
func (o *ObservedClient) GetPaymentsSince(ctx context.Context, inkey string, since int64) (payments []Payment, err error) {
	started := time.Now()
	defer func() {
		o.clientMetrics.Observe("get_payments", err, started)
	}()
	return o.client.GetPaymentsSince(ctx, inkey, since)
}

// CreateInvoice issues an invoice and returns the payment request.
func (o *ObservedClient) CreateInvoice(ctx context.Context, inkey string, amount int64, memo string, extra map[string]any) (bolt11 string, err error) {
	started := time.Now()
	defer func() {
		o.clientMetrics.Observe("create_invoice", err, started)
	}()
	return o.client.CreateInvoice(ctx, inkey, amount, memo, extra)
}

// PayInvoice settles a bolt11 payment request.
func (o *ObservedClient) PayInvoice(ctx context.Context, adminKey, bolt11 string) (err error) {
	started := time.Now()
	defer func() {
		o.clientMetrics.Observe("pay_invoice", err, started)
	}()
	return o.client.PayInvoice(ctx, adminKey, bolt11)
}
