package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	GetEarnings = `SELECT member_id, wallet, package_earnings, referral_bounty, combined_earnings
					FROM EARNINGS WHERE member_id=$1;`

	// used inside mutating transactions across the storage package
	GetEarningsForUpdate = `SELECT member_id, wallet, package_earnings, referral_bounty, combined_earnings
							FROM EARNINGS WHERE member_id=$1 FOR UPDATE;`
)

type EarningsDatabase struct {
	DB *Database
}

// Builds the earnings storage
func NewEarningsStorage(db *Database) EarningsStorage {
	return &EarningsDatabase{DB: db}
}

func (s *EarningsDatabase) GetEarnings(ctx context.Context, memberID string) (*models.EarningsData, error) {
	return scanEarnings(ctx, s.DB.Pool, GetEarnings, memberID)
}

// rows can come from the pool or from an open transaction
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanEarnings(ctx context.Context, q queryRower, query string, memberID string) (*models.EarningsData, error) {
	var (
		id       string
		wallet   decimal.Decimal
		pkg      decimal.Decimal
		referral decimal.Decimal
		combined decimal.Decimal
	)
	err := q.QueryRow(ctx, query, memberID).Scan(&id, &wallet, &pkg, &referral, &combined)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEarningsNotFound
		}
		return nil, fmt.Errorf("failed to get earnings: %w", err)
	}

	return &models.EarningsData{
		MemberID:        id,
		Wallet:          wallet,
		PackageEarnings: pkg,
		ReferralBounty:  referral,
		Combined:        combined,
	}, nil
}
