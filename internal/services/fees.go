package services

import (
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// flat fee charged on withdrawals from recognized buckets
var withdrawalFeeRate = decimal.NewFromFloat(0.1)

// Fee returns the withdrawal fee for the amount. Recognized bucket selectors
// pay a flat 10%, anything else pays nothing. Fees are truncated to two
// fractional digits.
func Fee(amount decimal.Decimal, bucket models.Bucket) decimal.Decimal {
	switch bucket {
	case models.BucketTotal, models.BucketDirectReferral, models.BucketIndirectReferral:
		return amount.Mul(withdrawalFeeRate).RoundDown(2)
	}
	return decimal.Zero
}

// NetAmount returns the payout after the fee.
func NetAmount(amount decimal.Decimal, bucket models.Bucket) decimal.Decimal {
	return amount.Sub(Fee(amount, bucket))
}

// parseAmount converts a request amount and rejects sub-cent precision, which
// the NUMERIC(18,2) columns would otherwise round independently of the
// applied bucket decrement.
func parseAmount(value float64) (decimal.Decimal, error) {
	amount := decimal.NewFromFloat(value)
	if !amount.Equal(amount.RoundDown(2)) {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}
