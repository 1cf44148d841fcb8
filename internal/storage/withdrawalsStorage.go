package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	InsertWithdrawal = `INSERT INTO WITHDRAWAL_REQUESTS
							(id, member_id, amount, fee, net_amount, bucket, bank_name, account_name, account_number,
							 package_deduction, referral_deduction, status, created_at, updated_at)
							VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13);`

	GetWithdrawalForUpdate = `SELECT id, member_id, amount, fee, net_amount, bucket, bank_name, account_name, account_number,
									 package_deduction, referral_deduction, status, COALESCE(approved_by::text, ''), COALESCE(reject_note, ''), created_at, updated_at
							  FROM WITHDRAWAL_REQUESTS WHERE id=$1 FOR UPDATE;`

	GetWithdrawalsByMember = `SELECT id, member_id, amount, fee, net_amount, bucket, bank_name, account_name, account_number,
									 package_deduction, referral_deduction, status, COALESCE(approved_by::text, ''), COALESCE(reject_note, ''), created_at, updated_at
							   FROM WITHDRAWAL_REQUESTS WHERE member_id=$1 ORDER BY created_at;`

	GetWithdrawalsByState = `SELECT id, member_id, amount, fee, net_amount, bucket, bank_name, account_name, account_number,
									 package_deduction, referral_deduction, status, COALESCE(approved_by::text, ''), COALESCE(reject_note, ''), created_at, updated_at
							  FROM WITHDRAWAL_REQUESTS WHERE status=$1 ORDER BY created_at;`

	UpdateWithdrawalStatus = `UPDATE WITHDRAWAL_REQUESTS
							  SET status = $1, approved_by = NULLIF($2, '')::uuid, reject_note = NULLIF($3, ''), updated_at = NOW()
							  WHERE id = $4;`

	DeductEarnings = `UPDATE EARNINGS
					  SET package_earnings = package_earnings - $1,
					      referral_bounty = referral_bounty - $2,
					      combined_earnings = combined_earnings - $3
					  WHERE member_id = $4;`

	RestoreEarnings = `UPDATE EARNINGS
					   SET package_earnings = package_earnings + $1,
					       referral_bounty = referral_bounty + $2,
					       combined_earnings = combined_earnings + $3
					   WHERE member_id = $4;`
)

type WithdrawalDatabase struct {
	DB *Database
}

// Builds the withdrawals storage
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db}
}

// CreateWithdrawal - reserves the funds and records the pending request in one
// transaction. The earnings row is read FOR UPDATE so concurrent requests for
// the same member serialize on the ceiling check.
func (s *WithdrawalDatabase) CreateWithdrawal(ctx context.Context, withdrawal models.WithdrawalData) (*models.WithdrawalData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("CreateWithdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	earnings, err := scanEarnings(ctx, tx, GetEarningsForUpdate, withdrawal.MemberID)
	if err != nil {
		return nil, err
	}

	if withdrawal.Amount.GreaterThan(earnings.Ceiling(withdrawal.Bucket)) {
		err = ErrInsufficientFunds
		return nil, err
	}

	split, ok := models.BucketSplit(withdrawal.Bucket, withdrawal.Amount, earnings.PackageEarnings, earnings.ReferralBounty)
	if !ok {
		// the ceiling admitted the amount but the buckets do not cover it
		err = ErrInconsistentLedger
		return nil, err
	}

	_, err = tx.Exec(ctx, DeductEarnings, split.Package, split.Referral, withdrawal.Amount, withdrawal.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve funds: %w", err)
	}

	now := time.Now()
	withdrawal.RequestID = uuid.New().String()
	withdrawal.PackageDeduction = split.Package
	withdrawal.ReferralDeduction = split.Referral
	withdrawal.Status = models.StatusPending
	withdrawal.CreatedAt = now
	withdrawal.UpdatedAt = now

	_, err = tx.Exec(ctx, InsertWithdrawal,
		withdrawal.RequestID, withdrawal.MemberID, withdrawal.Amount, withdrawal.Fee, withdrawal.NetAmount,
		string(withdrawal.Bucket), withdrawal.BankName, withdrawal.AccountName, withdrawal.AccountNumber,
		withdrawal.PackageDeduction, withdrawal.ReferralDeduction, withdrawal.Status, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert withdrawal request: %w", err)
	}

	err = insertTransaction(ctx, tx, withdrawal.MemberID, withdrawal.Amount.Neg(), "Withdrawal Pending")
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return &withdrawal, nil
}

// DecideWithdrawal - finalizes a pending request. The request row is read FOR
// UPDATE and the PENDING precondition is re-checked inside the transaction, so
// two admins deciding the same request cannot both succeed. Rejection restores
// the exact split reserved at creation time.
func (s *WithdrawalDatabase) DecideWithdrawal(ctx context.Context, requestID string, status string, approvedBy string, note string) (*models.WithdrawalData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("DecideWithdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	request, err := scanWithdrawal(tx.QueryRow(ctx, GetWithdrawalForUpdate, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrRequestNotFound
		}
		return nil, err
	}

	if request.Status != models.StatusPending {
		err = ErrAlreadyProcessed
		return nil, err
	}

	if _, err = tx.Exec(ctx, UpdateWithdrawalStatus, status, approvedBy, note, requestID); err != nil {
		return nil, fmt.Errorf("failed to update withdrawal status: %w", err)
	}

	description := "Withdrawal Success"
	if status == models.StatusRejected {
		description = "Withdrawal Failed"
		if note != "" {
			description = fmt.Sprintf("%s (%s)", description, note)
		}
		// put back exactly what was taken at creation
		_, err = tx.Exec(ctx, RestoreEarnings,
			request.PackageDeduction, request.ReferralDeduction, request.Amount, request.MemberID)
		if err != nil {
			return nil, fmt.Errorf("failed to restore funds: %w", err)
		}
	}

	// the debit was logged at reservation time; the decision entry carries
	// only its own ledger delta
	amount := decimal.Zero
	if status == models.StatusRejected {
		amount = request.Amount
	}
	if err = insertTransaction(ctx, tx, request.MemberID, amount, description); err != nil {
		return nil, err
	}

	if err = insertNotification(ctx, tx, request.MemberID, withdrawalMessage(status, request.Amount, note)); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}

	request.Status = status
	request.ApprovedBy = approvedBy
	request.RejectNote = note
	return request, nil
}

func withdrawalMessage(status string, amount decimal.Decimal, note string) string {
	if status == models.StatusRejected {
		return fmt.Sprintf("Withdrawal amounting to %s was rejected (%s)", amount.StringFixed(2), note)
	}
	return fmt.Sprintf("Withdrawal amounting to %s was approved. Please check your account for the transaction.", amount.StringFixed(2))
}

func (s *WithdrawalDatabase) GetWithdrawals(ctx context.Context, memberID string) ([]models.WithdrawalData, error) {
	return s.queryWithdrawals(ctx, GetWithdrawalsByMember, memberID)
}

func (s *WithdrawalDatabase) GetWithdrawalsByStatus(ctx context.Context, status string) ([]models.WithdrawalData, error) {
	return s.queryWithdrawals(ctx, GetWithdrawalsByState, status)
}

func (s *WithdrawalDatabase) queryWithdrawals(ctx context.Context, query string, arg string) ([]models.WithdrawalData, error) {
	var withdrawals []models.WithdrawalData
	rows, err := s.DB.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, rows.Err()
}

func scanWithdrawal(row pgx.Row) (*models.WithdrawalData, error) {
	var (
		w      models.WithdrawalData
		bucket string
	)
	err := row.Scan(
		&w.RequestID, &w.MemberID, &w.Amount, &w.Fee, &w.NetAmount, &bucket,
		&w.BankName, &w.AccountName, &w.AccountNumber,
		&w.PackageDeduction, &w.ReferralDeduction, &w.Status,
		&w.ApprovedBy, &w.RejectNote, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.Bucket = models.Bucket(bucket)
	return &w, nil
}
