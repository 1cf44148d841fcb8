package models

import "github.com/shopspring/decimal"

// Bucket - closed set of earnings buckets a withdrawal can draw from.
// TOTAL spans package earnings and referral bounty proportionally.
type Bucket string

const (
	BucketTotal            Bucket = "TOTAL"
	BucketDirectReferral   Bucket = "DIRECT_REFERRAL"
	BucketIndirectReferral Bucket = "INDIRECT_REFERRAL"
)

// ParseBucket maps an incoming selector to the closed set.
func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(s) {
	case BucketTotal, BucketDirectReferral, BucketIndirectReferral:
		return Bucket(s), true
	}
	return "", false
}

// EarningsData - per-member ledger record. Combined is maintained as the sum
// of package earnings and referral bounty; the wallet is tracked separately.
type EarningsData struct {
	MemberID        string
	Wallet          decimal.Decimal
	PackageEarnings decimal.Decimal
	ReferralBounty  decimal.Decimal
	Combined        decimal.Decimal
}

// BalanceResponse - member balance model for responses
type BalanceResponse struct {
	Wallet          float64 `json:"wallet"`
	PackageEarnings float64 `json:"package_earnings"`
	ReferralBounty  float64 `json:"referral_bounty"`
	Combined        float64 `json:"combined_earnings"`
}

// Split - the exact amounts taken from each bucket at reservation time.
// A rejection restores this split verbatim instead of re-deriving it.
type Split struct {
	Package  decimal.Decimal
	Referral decimal.Decimal
}

// Total returns the sum of the split parts.
func (s Split) Total() decimal.Decimal {
	return s.Package.Add(s.Referral)
}

// SplitWithdrawal deducts amount across the earnings buckets, package
// earnings first, referral bounty second. ok is false when the buckets do
// not cover the amount; callers must have checked the ceiling already, so a
// false result is a ledger consistency failure rather than a user error.
func SplitWithdrawal(amount, packageEarnings, referralBounty decimal.Decimal) (Split, bool) {
	remaining := amount

	pkg := decimal.Min(remaining, packageEarnings)
	remaining = remaining.Sub(pkg)

	ref := decimal.Min(remaining, referralBounty)
	remaining = remaining.Sub(ref)

	return Split{Package: pkg, Referral: ref}, remaining.IsZero()
}

// BucketSplit routes the deduction for a bucket selector. TOTAL spans both
// buckets proportionally; the referral selectors draw from the bounty alone.
func BucketSplit(bucket Bucket, amount, packageEarnings, referralBounty decimal.Decimal) (Split, bool) {
	switch bucket {
	case BucketTotal:
		return SplitWithdrawal(amount, packageEarnings, referralBounty)
	case BucketDirectReferral, BucketIndirectReferral:
		if amount.GreaterThan(referralBounty) {
			return Split{}, false
		}
		return Split{Referral: amount}, true
	}
	return Split{}, false
}

// Ceiling returns the balance a withdrawal from the bucket is checked against.
func (e *EarningsData) Ceiling(bucket Bucket) decimal.Decimal {
	switch bucket {
	case BucketTotal:
		return e.Combined
	case BucketDirectReferral, BucketIndirectReferral:
		return e.ReferralBounty
	}
	return decimal.Zero
}
