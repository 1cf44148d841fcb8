package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Enrollment statuses
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
)

// PackageData - investment product model from the storage
type PackageData struct {
	PackageID  string
	Name       string
	Percentage decimal.Decimal
	DayCount   int
	Active     bool
}

// EnrollRequest - incoming package enrollment model
type EnrollRequest struct {
	PackageID string  `json:"package_id" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

// EnrollmentData - enrollment position model from the storage
type EnrollmentData struct {
	EnrollmentID    string
	MemberID        string
	PackageID       string
	Amount          decimal.Decimal
	ProjectedPayout decimal.Decimal
	MaturityAt      time.Time
	Status          string
	CreatedAt       time.Time
}

// EnrollmentResponse - enrollment model for responses
type EnrollmentResponse struct {
	EnrollmentID    string  `json:"enrollment_id"`
	PackageID       string  `json:"package_id"`
	Amount          float64 `json:"amount"`
	ProjectedPayout float64 `json:"projected_payout"`
	MaturityAt      string  `json:"maturity_at"`
	Status          string  `json:"status"`
}
