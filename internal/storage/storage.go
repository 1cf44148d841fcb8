package storage

import (
	"context"
	"errors"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/models"
)

type MembersStorage interface {
	AddMember(ctx context.Context, username string, passwordHash string, role string) error
	GetMember(ctx context.Context, username string) (*models.MemberData, error)
	GetMemberByID(ctx context.Context, memberID string) (*models.MemberData, error)
}

type EarningsStorage interface {
	GetEarnings(ctx context.Context, memberID string) (*models.EarningsData, error)
}

type WithdrawalsStorage interface {
	CreateWithdrawal(ctx context.Context, withdrawal models.WithdrawalData) (*models.WithdrawalData, error)
	DecideWithdrawal(ctx context.Context, requestID string, status string, approvedBy string, note string) (*models.WithdrawalData, error)
	GetWithdrawals(ctx context.Context, memberID string) ([]models.WithdrawalData, error)
	GetWithdrawalsByStatus(ctx context.Context, status string) ([]models.WithdrawalData, error)
}

type TopUpsStorage interface {
	CreateTopUp(ctx context.Context, topUp models.TopUpData) (*models.TopUpData, error)
	DecideTopUp(ctx context.Context, requestID string, status string, approvedBy string, note string) (*models.TopUpData, error)
	GetTopUps(ctx context.Context, memberID string) ([]models.TopUpData, error)
	GetTopUpsByStatus(ctx context.Context, status string) ([]models.TopUpData, error)
}

type PackagesStorage interface {
	GetPackage(ctx context.Context, packageID string) (*models.PackageData, error)
	EnrollPackage(ctx context.Context, enrollment models.EnrollmentData) (*models.EnrollmentData, error)
	GetEnrollments(ctx context.Context, memberID string) ([]models.EnrollmentData, error)
	ClaimMaturedEnrollments(ctx context.Context, now time.Time, count int) ([]string, error)
	CompleteEnrollment(ctx context.Context, enrollmentID string) (*models.EnrollmentData, error)
}

type TransactionsStorage interface {
	GetTransactions(ctx context.Context, memberID string) ([]models.TransactionData, error)
}

type NotificationsStorage interface {
	GetNotifications(ctx context.Context, memberID string) ([]models.NotificationData, error)
	MarkNotificationRead(ctx context.Context, memberID string, notificationID string) error
}

type Storage struct {
	Members       MembersStorage
	Earnings      EarningsStorage
	Withdrawals   WithdrawalsStorage
	TopUps        TopUpsStorage
	Packages      PackagesStorage
	Transactions  TransactionsStorage
	Notifications NotificationsStorage
}

// Builds the storage aggregate
func NewStorage(db *Database) Storage {
	return Storage{
		Members:       NewMembersStorage(db),
		Earnings:      NewEarningsStorage(db),
		Withdrawals:   NewWithdrawalsStorage(db),
		TopUps:        NewTopUpsStorage(db),
		Packages:      NewPackagesStorage(db),
		Transactions:  NewTransactionsStorage(db),
		Notifications: NewNotificationsStorage(db),
	}
}

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrEarningsNotFound   = errors.New("earnings record not found")
	ErrRequestNotFound    = errors.New("request not found")
	ErrPackageNotFound    = errors.New("package not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	ErrAlreadyExists = errors.New("already exists")

	// request is no longer PENDING (or the enrollment no longer ACTIVE)
	ErrAlreadyProcessed = errors.New("request already processed")

	// checked again under the row lock, after the service-level precondition
	ErrInsufficientFunds = errors.New("insufficient funds")

	// the buckets no longer cover an amount the ceiling admitted
	ErrInconsistentLedger = errors.New("ledger buckets diverge from combined earnings")
)
