package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")
	ErrBelowMinimum      = errors.New("amount is below the withdrawal minimum")
	ErrInvalidAmount     = errors.New("amount has more than two fractional digits")
	ErrUnknownBucket     = errors.New("unknown earnings bucket")
	ErrMemberInactive    = errors.New("member is not active")
	ErrAlreadyProcessed  = errors.New("request already processed")
	ErrInvalidDecision   = errors.New("invalid decision status")
)

// single canonical minimum for withdrawals and enrollments
var MinimumAmount = decimal.NewFromInt(200)

type WithdrawalsService interface {
	Create(ctx context.Context, username string, request models.WithdrawalRequest) (*models.WithdrawalData, error)
	Decide(ctx context.Context, approver string, requestID string, decision models.WithdrawalDecision) (*models.WithdrawalData, error)
	History(ctx context.Context, username string) ([]models.WithdrawalData, error)
	Pending(ctx context.Context) ([]models.WithdrawalData, error)
}

type Withdrawals struct {
	Members     storage.MembersStorage
	Earnings    storage.EarningsStorage
	Withdrawals storage.WithdrawalsStorage
	Notifier    Notifier
}

// Builds the withdrawals service
func NewWithdrawals(members storage.MembersStorage, earnings storage.EarningsStorage, withdrawals storage.WithdrawalsStorage, notifier Notifier) WithdrawalsService {
	return &Withdrawals{Members: members, Earnings: earnings, Withdrawals: withdrawals, Notifier: notifier}
}

// Create validates the request and reserves the funds. The ceiling is checked
// here for a fast rejection and re-checked by the storage under the row lock;
// nothing is mutated when any precondition fails.
func (s *Withdrawals) Create(ctx context.Context, username string, request models.WithdrawalRequest) (*models.WithdrawalData, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return nil, err
	}
	if !member.Active {
		return nil, ErrMemberInactive
	}

	bucket, ok := models.ParseBucket(request.Bucket)
	if !ok {
		return nil, ErrUnknownBucket
	}

	amount, err := parseAmount(request.Amount)
	if err != nil {
		return nil, err
	}
	if amount.LessThan(MinimumAmount) {
		return nil, ErrBelowMinimum
	}

	earnings, err := s.Earnings.GetEarnings(ctx, member.MemberID)
	if err != nil {
		logger.Error("Failed to get earnings", zap.Error(err))
		return nil, err
	}
	if amount.GreaterThan(earnings.Ceiling(bucket)) {
		return nil, ErrInsufficientFunds
	}

	withdrawal := models.WithdrawalData{
		MemberID:      member.MemberID,
		Amount:        amount,
		Fee:           Fee(amount, bucket),
		NetAmount:     NetAmount(amount, bucket),
		Bucket:        bucket,
		BankName:      request.BankName,
		AccountName:   request.AccountName,
		AccountNumber: request.AccountNumber,
	}

	created, err := s.Withdrawals.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		logger.Error("Failed to create withdrawal", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Decide applies the admin decision to a pending request. The storage rejects
// any request already in a terminal state; the member is informed through the
// notification feed and a best-effort email that never rolls back the ledger.
func (s *Withdrawals) Decide(ctx context.Context, approver string, requestID string, decision models.WithdrawalDecision) (*models.WithdrawalData, error) {
	if decision.Status != models.StatusApproved && decision.Status != models.StatusRejected {
		return nil, ErrInvalidDecision
	}

	member, err := s.Members.GetMember(ctx, approver)
	if err != nil {
		logger.Error("Failed to get approver", zap.Error(err))
		return nil, err
	}

	updated, err := s.Withdrawals.DecideWithdrawal(ctx, requestID, decision.Status, member.MemberID, decision.Note)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyProcessed) {
			return nil, ErrAlreadyProcessed
		}
		logger.Error("Failed to decide withdrawal", zap.Error(err))
		return nil, err
	}

	s.Notifier.Notify(ctx, updated.MemberID,
		fmt.Sprintf("Withdrawal Request %s", decision.Status),
		fmt.Sprintf("Your withdrawal of %s has been %s.", updated.NetAmount.StringFixed(2), decision.Status))

	return updated, nil
}

// History returns all withdrawal requests of the member.
func (s *Withdrawals) History(ctx context.Context, username string) ([]models.WithdrawalData, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrMemberNotFound) {
			logger.Warn("Member not found", username)
			return nil, storage.ErrMemberNotFound
		}
		logger.Error("Error getting member", zap.Error(err))
		return nil, err
	}

	withdrawals, err := s.Withdrawals.GetWithdrawals(ctx, member.MemberID)
	if err != nil {
		logger.Error("Failed to get withdrawals:", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// Pending returns the requests awaiting an accounting decision.
func (s *Withdrawals) Pending(ctx context.Context) ([]models.WithdrawalData, error) {
	withdrawals, err := s.Withdrawals.GetWithdrawalsByStatus(ctx, models.StatusPending)
	if err != nil {
		logger.Error("Failed to get pending withdrawals:", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
