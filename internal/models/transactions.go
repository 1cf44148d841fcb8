package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionData - immutable audit entry written alongside every
// ledger-affecting transition. Amount is signed: debits negative.
type TransactionData struct {
	TransactionID string
	MemberID      string
	Amount        decimal.Decimal
	Description   string
	CreatedAt     time.Time
}

// TransactionResponse - history entry for responses
type TransactionResponse struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// NotificationData - member-facing message, not authoritative state
type NotificationData struct {
	NotificationID string
	MemberID       string
	Message        string
	Read           bool
	CreatedAt      time.Time
}

// NotificationResponse - notification entry for responses
type NotificationResponse struct {
	NotificationID string `json:"notification_id"`
	Message        string `json:"message"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"created_at"`
}
