package lnbits

// Payment is a raw LNbits payment record as delivered by the API.
// Amount is in millisats and is a pointer so a missing field can be
// told apart from zero. Time carries fractional seconds on newer
// LNbits releases.
type Payment struct {
	ID         string        `json:"id"`
	CheckingID string        `json:"checking_id"`
	Bolt11     string        `json:"bolt11"`
	Memo       string        `json:"memo"`
	Amount     *int64        `json:"amount"`
	Fee        int64         `json:"fee"`
	WalletID   string        `json:"wallet_id"`
	Time       float64       `json:"time"`
	Pending    bool          `json:"pending"`
	Extra      *PaymentExtra `json:"extra"`
}

// PaymentExtra carries optional actor metadata attached to a payment.
type PaymentExtra struct {
	From *ActorRef `json:"from"`
	To   *ActorRef `json:"to"`
}

// ActorRef references a user in the LNbits user manager.
type ActorRef struct {
	ID string `json:"id"`
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
}

type walletPayload struct {
	ID          string `json:"id"`
	Admin       string `json:"admin"`
	Name        string `json:"name"`
	User        string `json:"user"`
	AdminKey    string `json:"adminkey"`
	Inkey       string `json:"inkey"`
	BalanceMsat int64  `json:"balance_msat"`
	Deleted     bool   `json:"deleted"`
}

type walletDetailsPayload struct {
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

type userExtraPayload struct {
	AADObjectID       string `json:"aadObjectId"`
	PrivateWalletID   string `json:"privateWalletId"`
	AllowanceWalletID string `json:"allowanceWalletId"`
}

type userPayload struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Extra *userExtraPayload `json:"extra"`
}

type createInvoiceRequest struct {
	Out    bool           `json:"out"`
	Amount int64          `json:"amount"`
	Memo   string         `json:"memo"`
	Extra  map[string]any `json:"extra,omitempty"`
}

type createInvoiceResponse struct {
	PaymentRequest string `json:"payment_request"`
}

type payInvoiceRequest struct {
	Out    bool   `json:"out"`
	Bolt11 string `json:"bolt11"`
}
