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
	InsertTopUp = `INSERT INTO TOP_UP_REQUESTS
						(id, member_id, amount, payment_method, account_name, account_number, attachment_url, status, created_at, updated_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9);`

	GetTopUpForUpdate = `SELECT id, member_id, amount, payment_method, account_name, account_number, attachment_url,
								status, COALESCE(approved_by::text, ''), COALESCE(reject_note, ''), created_at, updated_at
						 FROM TOP_UP_REQUESTS WHERE id=$1 FOR UPDATE;`

	GetTopUpsByMember = `SELECT id, member_id, amount, payment_method, account_name, account_number, attachment_url,
								status, COALESCE(approved_by::text, ''), COALESCE(reject_note, ''), created_at, updated_at
						 FROM TOP_UP_REQUESTS WHERE member_id=$1 ORDER BY created_at;`

	GetTopUpsByState = `SELECT id, member_id, amount, payment_method, account_name, account_number, attachment_url,
								status, COALESCE(approved_by::text, ''), COALESCE(reject_note, ''), created_at, updated_at
						FROM TOP_UP_REQUESTS WHERE status=$1 ORDER BY created_at;`

	UpdateTopUpStatus = `UPDATE TOP_UP_REQUESTS
						 SET status = $1, approved_by = NULLIF($2, '')::uuid, reject_note = NULLIF($3, ''), updated_at = NOW()
						 WHERE id = $4;`

	CreditWallet = `UPDATE EARNINGS SET wallet = wallet + $1 WHERE member_id = $2;`
)

type TopUpDatabase struct {
	DB *Database
}

// Builds the top-ups storage
func NewTopUpsStorage(db *Database) TopUpsStorage {
	return &TopUpDatabase{DB: db}
}

// CreateTopUp - records a pending deposit request. No ledger effect until the
// request is approved; the attachment is already uploaded by the caller.
func (s *TopUpDatabase) CreateTopUp(ctx context.Context, topUp models.TopUpData) (*models.TopUpData, error) {
	now := time.Now()
	topUp.RequestID = uuid.New().String()
	topUp.Status = models.StatusPending
	topUp.CreatedAt = now
	topUp.UpdatedAt = now

	_, err := s.DB.Pool.Exec(ctx, InsertTopUp,
		topUp.RequestID, topUp.MemberID, topUp.Amount, topUp.PaymentMethod,
		topUp.AccountName, topUp.AccountNumber, topUp.AttachmentURL, topUp.Status, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert top-up request: %w", err)
	}
	return &topUp, nil
}

// DecideTopUp - finalizes a pending deposit. The PENDING precondition is
// re-checked under the row lock so a repeated approval cannot credit the
// wallet twice. Approval credits the wallet by the stored amount exactly once.
func (s *TopUpDatabase) DecideTopUp(ctx context.Context, requestID string, status string, approvedBy string, note string) (*models.TopUpData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("DecideTopUp. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	request, err := scanTopUp(tx.QueryRow(ctx, GetTopUpForUpdate, requestID))
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

	if _, err = tx.Exec(ctx, UpdateTopUpStatus, status, approvedBy, note, requestID); err != nil {
		return nil, fmt.Errorf("failed to update top-up status: %w", err)
	}

	description := "Deposit Failed"
	amount := decimal.Zero
	if status == models.StatusApproved {
		description = "Deposit Success"
		amount = request.Amount
		if _, err = tx.Exec(ctx, CreditWallet, request.Amount, request.MemberID); err != nil {
			return nil, fmt.Errorf("failed to credit wallet: %w", err)
		}
	}
	if note != "" {
		description = fmt.Sprintf("%s (%s)", description, note)
	}

	if err = insertTransaction(ctx, tx, request.MemberID, amount, description); err != nil {
		return nil, err
	}

	if err = insertNotification(ctx, tx, request.MemberID, topUpMessage(status, request.Amount, note)); err != nil {
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

func topUpMessage(status string, amount decimal.Decimal, note string) string {
	if status == models.StatusRejected {
		return fmt.Sprintf("Deposit amounting to %s was rejected (%s)", amount.StringFixed(2), note)
	}
	return fmt.Sprintf("Deposit amounting to %s was approved and credited to your wallet.", amount.StringFixed(2))
}

func (s *TopUpDatabase) GetTopUps(ctx context.Context, memberID string) ([]models.TopUpData, error) {
	return s.queryTopUps(ctx, GetTopUpsByMember, memberID)
}

func (s *TopUpDatabase) GetTopUpsByStatus(ctx context.Context, status string) ([]models.TopUpData, error) {
	return s.queryTopUps(ctx, GetTopUpsByState, status)
}

func (s *TopUpDatabase) queryTopUps(ctx context.Context, query string, arg string) ([]models.TopUpData, error) {
	var topUps []models.TopUpData
	rows, err := s.DB.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get top-up requests: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		topUp, err := scanTopUp(rows)
		if err != nil {
			return topUps, fmt.Errorf("failed scan top-up data: %w", err)
		}
		topUps = append(topUps, *topUp)
	}
	return topUps, rows.Err()
}

func scanTopUp(row pgx.Row) (*models.TopUpData, error) {
	var t models.TopUpData
	err := row.Scan(
		&t.RequestID, &t.MemberID, &t.Amount, &t.PaymentMethod, &t.AccountName,
		&t.AccountNumber, &t.AttachmentURL, &t.Status, &t.ApprovedBy, &t.RejectNote,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
