package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopUpRequest - incoming deposit request model. The attachment arrives as a
// multipart file and is handled outside this struct.
type TopUpRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	AccountName   string  `json:"account_name" validate:"required"`
	AccountNumber string  `json:"account_number" validate:"required"`
}

// TopUpData - top-up request model from the storage
type TopUpData struct {
	RequestID     string
	MemberID      string
	Amount        decimal.Decimal
	PaymentMethod string
	AccountName   string
	AccountNumber string
	AttachmentURL string
	Status        string
	ApprovedBy    string
	RejectNote    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TopUpDecision - admin decision on a pending top-up request
type TopUpDecision struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Note   string `json:"note" validate:"omitempty,max=255"`
}

// TopUpResponse - top-up model for responses
type TopUpResponse struct {
	RequestID     string  `json:"request_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	AttachmentURL string  `json:"attachment_url"`
	Status        string  `json:"status"`
	Note          string  `json:"note,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
