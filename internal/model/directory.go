package model

// Wallet is an LNbits wallet as seen by the dashboard.
type Wallet struct {
	ID          string
	Name        string
	User        string
	AdminKey    string
	Inkey       string
	BalanceMsat int64
	Deleted     bool
}

// User is a directory entry backing actor resolution.
type User struct {
	ID                string
	DisplayName       string
	Email             string
	AADObjectID       string
	PrivateWalletID   string
	AllowanceWalletID string
}
