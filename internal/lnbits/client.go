package lnbits

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/NataliaMilgevskaya/Zapp.ie/internal/model"
)

const (
	headerAPIKey = "X-Api-Key"

	// paymentFetchLimit caps how many payments a single wallet scan
	// pulls; there is no pagination beyond it.
	paymentFetchLimit = 100

	defaultTimeout = 30 * time.Second
)

// Config holds LNbits connection settings.
type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// Client talks to an LNbits instance. The bearer token obtained from
// the auth endpoint is cached in memory and re-acquired after a 401.
type Client struct {
	baseURL  string
	username string
	password string
	httpc    *http.Client
	logger   *zap.Logger

	mu    sync.Mutex
	token string
}

// NewClient validates the configuration and builds a Client.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse lnbits url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("lnbits url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("lnbits url missing host")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		httpc:    &http.Client{Timeout: timeout},
		logger:   logger.Named("lnbits"),
	}, nil
}

// GetWallets returns all non-deleted wallets, optionally narrowed to
// those whose name contains filterByName.
func (c *Client) GetWallets(ctx context.Context, filterByName string) ([]model.Wallet, error) {
	var payload []walletPayload
	if err := c.bearerGet(ctx, "get_wallets", "/api/v1/wallets", &payload); err != nil {
		return nil, err
	}

	wallets := make([]model.Wallet, 0, len(payload))
	for _, w := range payload {
		if w.Deleted {
			continue
		}
		if filterByName != "" && !strings.Contains(w.Name, filterByName) {
			continue
		}
		wallets = append(wallets, walletFromPayload(w))
	}
	return wallets, nil
}

// GetUserWallets returns the non-deleted wallets belonging to a user.
func (c *Client) GetUserWallets(ctx context.Context, userID string) ([]model.Wallet, error) {
	var payload []walletPayload
	path := "/users/api/v1/user/" + url.PathEscape(userID) + "/wallet"
	if err := c.bearerGet(ctx, "get_user_wallets", path, &payload); err != nil {
		return nil, err
	}

	wallets := make([]model.Wallet, 0, len(payload))
	for _, w := range payload {
		if w.Deleted {
			continue
		}
		wallets = append(wallets, walletFromPayload(w))
	}
	return wallets, nil
}

// GetUsers returns user-manager directory entries, optionally filtered
// by extra metadata.
func (c *Client) GetUsers(ctx context.Context, adminKey string, extraFilter map[string]string) ([]model.User, error) {
	path := "/usermanager/api/v1/users"
	if len(extraFilter) > 0 {
		encoded, err := json.Marshal(extraFilter)
		if err != nil {
			return nil, fmt.Errorf("encode extra filter: %w", err)
		}
		path += "?extra=" + url.QueryEscape(string(encoded))
	}

	var payload []userPayload
	if err := c.keyedRequest(ctx, "get_users", http.MethodGet, path, adminKey, nil, &payload); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(payload))
	for _, u := range payload {
		user := model.User{
			ID:          u.ID,
			DisplayName: u.Name,
			Email:       u.Email,
		}
		if u.Extra != nil {
			user.AADObjectID = u.Extra.AADObjectID
			user.PrivateWalletID = u.Extra.PrivateWalletID
			user.AllowanceWalletID = u.Extra.AllowanceWalletID
		}
		users = append(users, user)
	}
	return users, nil
}

// GetWalletBalance returns a wallet's balance in sats.
func (c *Client) GetWalletBalance(ctx context.Context, inkey string) (int64, error) {
	var payload walletDetailsPayload
	if err := c.keyedRequest(ctx, "get_wallet_balance", http.MethodGet, "/api/v1/wallet", inkey, nil, &payload); err != nil {
		return 0, err
	}
	return payload.Balance / msatPerSat, nil
}

// GetPaymentsSince fetches up to paymentFetchLimit payments on a wallet
// and keeps those newer than the given unix timestamp.
func (c *Client) GetPaymentsSince(ctx context.Context, inkey string, since int64) ([]Payment, error) {
	path := fmt.Sprintf("/api/v1/payments?limit=%d", paymentFetchLimit)
	var payload []Payment
	if err := c.keyedRequest(ctx, "get_payments", http.MethodGet, path, inkey, nil, &payload); err != nil {
		return nil, err
	}

	payments := make([]Payment, 0, len(payload))
	for _, p := range payload {
		if p.Time > float64(since) {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

// CreateInvoice asks the wallet to issue an invoice and returns the
// bolt11 payment request.
func (c *Client) CreateInvoice(ctx context.Context, inkey string, amount int64, memo string, extra map[string]any) (string, error) {
	req := createInvoiceRequest{Out: false, Amount: amount, Memo: memo, Extra: extra}
	var payload createInvoiceResponse
	if err := c.keyedRequest(ctx, "create_invoice", http.MethodPost, "/api/v1/payments", inkey, req, &payload); err != nil {
		return "", err
	}
	return payload.PaymentRequest, nil
}

// PayInvoice settles a bolt11 payment request from the wallet behind
// the admin key.
func (c *Client) PayInvoice(ctx context.Context, adminKey, bolt11 string) error {
	req := payInvoiceRequest{Out: true, Bolt11: bolt11}
	return c.keyedRequest(ctx, "pay_invoice", http.MethodPost, "/api/v1/payments", adminKey, req, nil)
}

// bearerGet performs an authenticated GET, re-authenticating once when
// the cached token is rejected.
func (c *Client) bearerGet(ctx context.Context, operation, path string, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	err = c.do(ctx, operation, http.MethodGet, path, map[string]string{"Authorization": "Bearer " + token}, nil, out)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized {
		c.invalidateToken(token)
		c.logger.Debug("cached token rejected, re-authenticating", zap.String("operation", operation))
		token, err = c.accessToken(ctx)
		if err != nil {
			return err
		}
		return c.do(ctx, operation, http.MethodGet, path, map[string]string{"Authorization": "Bearer " + token}, nil, out)
	}
	return err
}

func (c *Client) keyedRequest(ctx context.Context, operation, method, path, apiKey string, body, out any) error {
	return c.do(ctx, operation, method, path, map[string]string{headerAPIKey: apiKey}, body, out)
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" {
		return c.token, nil
	}

	var payload authResponse
	err := c.do(ctx, "auth", http.MethodPost, "/api/v1/auth", nil, authRequest{
		Username: c.username,
		Password: c.password,
	}, &payload)
	if err != nil {
		return "", fmt.Errorf("acquire access token: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("access token missing in auth response")
	}
	c.token = payload.AccessToken
	return c.token, nil
}

func (c *Client) invalidateToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == token {
		c.token = ""
	}
}

func (c *Client) do(ctx context.Context, operation, method, path string, headers map[string]string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("lnbits %s: encode request: %w", operation, err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("lnbits %s: build request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("lnbits %s: %w", operation, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Operation: operation, Code: res.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("lnbits %s: decode response: %w", operation, err)
	}
	return nil
}

func walletFromPayload(w walletPayload) model.Wallet {
	return model.Wallet{
		ID:          w.ID,
		Name:        w.Name,
		User:        w.User,
		AdminKey:    w.AdminKey,
		Inkey:       w.Inkey,
		BalanceMsat: w.BalanceMsat,
		Deleted:     w.Deleted,
	}
}
