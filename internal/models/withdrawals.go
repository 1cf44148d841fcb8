package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request statuses, shared by withdrawal and top-up requests
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// WithdrawalRequest - incoming withdrawal request model
type WithdrawalRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Bucket        string  `json:"bucket" validate:"required"`
	BankName      string  `json:"bank_name" validate:"required"`
	AccountName   string  `json:"account_name" validate:"required"`
	AccountNumber string  `json:"account_number" validate:"required,numeric"`
}

// WithdrawalData - withdrawal request model from the storage
type WithdrawalData struct {
	RequestID     string
	MemberID      string
	Amount        decimal.Decimal
	Fee           decimal.Decimal
	NetAmount     decimal.Decimal
	Bucket        Bucket
	BankName      string
	AccountName   string
	AccountNumber string
	// split reserved at creation, restored as-is on rejection
	PackageDeduction  decimal.Decimal
	ReferralDeduction decimal.Decimal
	Status            string
	ApprovedBy        string
	RejectNote        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// WithdrawalDecision - admin decision on a pending withdrawal request
type WithdrawalDecision struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Note   string `json:"note" validate:"omitempty,max=255"`
}

// WithdrawalResponse - withdrawal model for responses
type WithdrawalResponse struct {
	RequestID string  `json:"request_id"`
	Amount    float64 `json:"amount"`
	Fee       float64 `json:"fee"`
	NetAmount float64 `json:"net_amount"`
	Bucket    string  `json:"bucket"`
	BankName  string  `json:"bank_name"`
	Status    string  `json:"status"`
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}
