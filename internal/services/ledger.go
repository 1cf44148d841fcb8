package services

import (
	"context"

	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"go.uber.org/zap"
)

type LedgerService interface {
	GetBalance(ctx context.Context, username string) (*models.BalanceResponse, error)
	GetTransactions(ctx context.Context, username string) ([]models.TransactionData, error)
	GetNotifications(ctx context.Context, username string) ([]models.NotificationData, error)
	MarkNotificationRead(ctx context.Context, username string, notificationID string) error
}

type Ledger struct {
	Members       storage.MembersStorage
	Earnings      storage.EarningsStorage
	Transactions  storage.TransactionsStorage
	Notifications storage.NotificationsStorage
}

// Builds the ledger read service
func NewLedger(members storage.MembersStorage, earnings storage.EarningsStorage, transactions storage.TransactionsStorage, notifications storage.NotificationsStorage) LedgerService {
	return &Ledger{Members: members, Earnings: earnings, Transactions: transactions, Notifications: notifications}
}

// GetBalance returns the four bucket balances of the member.
func (s *Ledger) GetBalance(ctx context.Context, username string) (*models.BalanceResponse, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return nil, err
	}

	earnings, err := s.Earnings.GetEarnings(ctx, member.MemberID)
	if err != nil {
		logger.Error("Failed to get earnings", zap.Error(err))
		return nil, err
	}

	wallet, _ := earnings.Wallet.Float64()
	pkg, _ := earnings.PackageEarnings.Float64()
	referral, _ := earnings.ReferralBounty.Float64()
	combined, _ := earnings.Combined.Float64()
	return &models.BalanceResponse{
		Wallet:          wallet,
		PackageEarnings: pkg,
		ReferralBounty:  referral,
		Combined:        combined,
	}, nil
}

// GetTransactions returns the audit history of the member.
func (s *Ledger) GetTransactions(ctx context.Context, username string) ([]models.TransactionData, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return nil, err
	}

	transactions, err := s.Transactions.GetTransactions(ctx, member.MemberID)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// GetNotifications returns the notification feed of the member.
func (s *Ledger) GetNotifications(ctx context.Context, username string) ([]models.NotificationData, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return nil, err
	}

	notifications, err := s.Notifications.GetNotifications(ctx, member.MemberID)
	if err != nil {
		logger.Error("Failed to get notifications:", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead flags a single feed entry as read.
func (s *Ledger) MarkNotificationRead(ctx context.Context, username string, notificationID string) error {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return err
	}
	return s.Notifications.MarkNotificationRead(ctx, member.MemberID, notificationID)
}
