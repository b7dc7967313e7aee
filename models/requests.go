package models

// RegisterRequest creates a new account with at least one key record.
type RegisterRequest struct {
	AccountID string      `json:"account_id"`
	Name      string      `json:"name"`
	Keys      []KeyRecord `json:"keys"`
}

// AuthRequest authenticates a single label of an account.
type AuthRequest struct {
	AccountID string    `json:"account_id"`
	Query     AuthQuery `json:"query"`
}

// SetKeysRequest overwrites or appends key records for the account bound to
// the session. Signature is the base64 signature of the account id and the
// digest of Keys, made with the account's current agent key.
type SetKeysRequest struct {
	Keys      []KeyRecord `json:"keys"`
	Signature string      `json:"signature"`
}

// RecoverRequest carries unauthenticated recovery attempts, tried in order.
type RecoverRequest struct {
	AccountID string      `json:"account_id"`
	Attempts  []AuthQuery `json:"attempts"`
}

// AuthResponse is the body returned by a successful authentication.
type AuthResponse struct {
	Session Session   `json:"session"`
	Match   AuthMatch `json:"match"`
}

// Empty is used for transport calls without a meaningful payload.
type Empty struct{}

// RecoveryQuestion is one security question and the user's answer. Only
// the client ever sees it; the custodian stores the derived keys.
type RecoveryQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
