package services

import (
	"context"
	"errors"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPackageInactive = errors.New("package is not available")
)

var percentBase = decimal.NewFromInt(100)

type PackagesService interface {
	Enroll(ctx context.Context, username string, request models.EnrollRequest) (*models.EnrollmentData, error)
	Positions(ctx context.Context, username string) ([]models.EnrollmentData, error)
	MaturedEnrollments(ctx context.Context, count int) ([]string, error)
	ProcessPayout(ctx context.Context, enrollmentID string) error
}

type Packages struct {
	Members  storage.MembersStorage
	Earnings storage.EarningsStorage
	Packages storage.PackagesStorage
	Notifier Notifier
}

// Builds the packages service
func NewPackages(members storage.MembersStorage, earnings storage.EarningsStorage, packages storage.PackagesStorage, notifier Notifier) PackagesService {
	return &Packages{Members: members, Earnings: earnings, Packages: packages, Notifier: notifier}
}

// Enroll debits the amount from the combined earnings and opens a position.
// The payout itself is credited later, when the maturity worker picks the
// position up.
func (s *Packages) Enroll(ctx context.Context, username string, request models.EnrollRequest) (*models.EnrollmentData, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return nil, err
	}
	if !member.Active {
		return nil, ErrMemberInactive
	}

	pkg, err := s.Packages.GetPackage(ctx, request.PackageID)
	if err != nil {
		logger.Error("Failed to get package", zap.Error(err))
		return nil, err
	}
	if !pkg.Active {
		return nil, ErrPackageInactive
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
	if amount.GreaterThan(earnings.Combined) {
		return nil, ErrInsufficientFunds
	}

	enrollment := models.EnrollmentData{
		MemberID:        member.MemberID,
		PackageID:       pkg.PackageID,
		Amount:          amount,
		ProjectedPayout: ProjectedPayout(amount, pkg.Percentage),
		MaturityAt:      time.Now().AddDate(0, 0, pkg.DayCount),
	}

	created, err := s.Packages.EnrollPackage(ctx, enrollment)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		logger.Error("Failed to enroll package", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// ProjectedPayout - principal plus the package percentage of it.
func ProjectedPayout(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Add(amount.Mul(percentage).Div(percentBase)).RoundDown(2)
}

// Positions returns all package positions of the member.
func (s *Packages) Positions(ctx context.Context, username string) ([]models.EnrollmentData, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return nil, err
	}

	enrollments, err := s.Packages.GetEnrollments(ctx, member.MemberID)
	if err != nil {
		logger.Error("Failed to get enrollments:", zap.Error(err))
		return nil, err
	}
	return enrollments, nil
}

// MaturedEnrollments returns a batch of positions past their maturity date.
func (s *Packages) MaturedEnrollments(ctx context.Context, count int) ([]string, error) {
	return s.Packages.ClaimMaturedEnrollments(ctx, time.Now(), count)
}

// ProcessPayout credits a single matured position. A position already
// completed by another worker instance is skipped silently.
func (s *Packages) ProcessPayout(ctx context.Context, enrollmentID string) error {
	enrollment, err := s.Packages.CompleteEnrollment(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyProcessed) {
			return nil
		}
		return err
	}

	s.Notifier.Notify(ctx, enrollment.MemberID,
		"Package Matured",
		"Your package payout of "+enrollment.ProjectedPayout.StringFixed(2)+" has been credited.")
	return nil
}
