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
	"go.uber.org/zap"
)

const (
	GetPackage = `SELECT id, name, percentage, day_count, active FROM PACKAGES WHERE id=$1;`

	InsertEnrollment = `INSERT INTO PACKAGE_ENROLLMENTS
							(id, member_id, package_id, amount, projected_payout, maturity_at, status, created_at, updated_at)
							VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8);`

	GetEnrollmentsByMember = `SELECT id, member_id, package_id, amount, projected_payout, maturity_at, status, created_at
							  FROM PACKAGE_ENROLLMENTS WHERE member_id=$1 ORDER BY created_at;`

	// matured positions are claimed with SKIP LOCKED so concurrent worker
	// instances never pick the same batch
	ClaimMatured = `SELECT id FROM PACKAGE_ENROLLMENTS
					WHERE status = 'ACTIVE' AND maturity_at <= $1
					ORDER BY maturity_at
					LIMIT $2
					FOR UPDATE SKIP LOCKED;`

	GetEnrollmentForUpdate = `SELECT id, member_id, package_id, amount, projected_payout, maturity_at, status, created_at
							  FROM PACKAGE_ENROLLMENTS WHERE id=$1 FOR UPDATE;`

	CompleteEnrollmentState = `UPDATE PACKAGE_ENROLLMENTS SET status = 'COMPLETED', updated_at = NOW() WHERE id = $1;`

	CreditPackageEarnings = `UPDATE EARNINGS
							 SET package_earnings = package_earnings + $1,
							     combined_earnings = combined_earnings + $1
							 WHERE member_id = $2;`
)

type PackageDatabase struct {
	DB *Database
}

// Builds the packages storage
func NewPackagesStorage(db *Database) PackagesStorage {
	return &PackageDatabase{DB: db}
}

func (s *PackageDatabase) GetPackage(ctx context.Context, packageID string) (*models.PackageData, error) {
	var p models.PackageData
	err := s.DB.Pool.QueryRow(ctx, GetPackage, packageID).Scan(
		&p.PackageID, &p.Name, &p.Percentage, &p.DayCount, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return &p, nil
}

// EnrollPackage - debits the enrollment amount from the earnings buckets and
// records the position in one transaction. Crediting of the matured payout is
// done later by the payout worker.
func (s *PackageDatabase) EnrollPackage(ctx context.Context, enrollment models.EnrollmentData) (*models.EnrollmentData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("EnrollPackage. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	earnings, err := scanEarnings(ctx, tx, GetEarningsForUpdate, enrollment.MemberID)
	if err != nil {
		return nil, err
	}

	if enrollment.Amount.GreaterThan(earnings.Combined) {
		err = ErrInsufficientFunds
		return nil, err
	}

	split, ok := models.SplitWithdrawal(enrollment.Amount, earnings.PackageEarnings, earnings.ReferralBounty)
	if !ok {
		err = ErrInconsistentLedger
		return nil, err
	}

	_, err = tx.Exec(ctx, DeductEarnings, split.Package, split.Referral, enrollment.Amount, enrollment.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to debit earnings: %w", err)
	}

	now := time.Now()
	enrollment.EnrollmentID = uuid.New().String()
	enrollment.Status = models.EnrollmentActive
	enrollment.CreatedAt = now

	_, err = tx.Exec(ctx, InsertEnrollment,
		enrollment.EnrollmentID, enrollment.MemberID, enrollment.PackageID,
		enrollment.Amount, enrollment.ProjectedPayout, enrollment.MaturityAt, enrollment.Status, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert enrollment: %w", err)
	}

	if err = insertTransaction(ctx, tx, enrollment.MemberID, enrollment.Amount.Neg(), "Package Enrolled"); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return &enrollment, nil
}

func (s *PackageDatabase) GetEnrollments(ctx context.Context, memberID string) ([]models.EnrollmentData, error) {
	var enrollments []models.EnrollmentData
	rows, err := s.DB.Pool.Query(ctx, GetEnrollmentsByMember, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return enrollments, fmt.Errorf("failed scan enrollment data: %w", err)
		}
		enrollments = append(enrollments, *enrollment)
	}
	return enrollments, rows.Err()
}

// ClaimMaturedEnrollments returns ids of positions past maturity. The claim
// runs in its own short transaction; the per-position credit re-checks the
// ACTIVE state, so a stale claim is harmless.
func (s *PackageDatabase) ClaimMaturedEnrollments(ctx context.Context, now time.Time, count int) ([]string, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Error("ClaimMaturedEnrollments. Rollback failed:", zap.Error(rbErr))
		}
	}()

	var ids []string
	rows, err := tx.Query(ctx, ClaimMatured, now, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim matured enrollments: %w", err)
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return ids, fmt.Errorf("failed scan enrollment id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return ids, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return ids, nil
}

// CompleteEnrollment - credits the projected payout back to the package
// earnings bucket and closes the position. Guarded by the ACTIVE precondition
// under the row lock so a payout is never applied twice.
func (s *PackageDatabase) CompleteEnrollment(ctx context.Context, enrollmentID string) (*models.EnrollmentData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("CompleteEnrollment. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	enrollment, err := scanEnrollment(tx.QueryRow(ctx, GetEnrollmentForUpdate, enrollmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrEnrollmentNotFound
		}
		return nil, err
	}

	if enrollment.Status != models.EnrollmentActive {
		err = ErrAlreadyProcessed
		return nil, err
	}

	if _, err = tx.Exec(ctx, CompleteEnrollmentState, enrollmentID); err != nil {
		return nil, fmt.Errorf("failed to complete enrollment: %w", err)
	}

	if _, err = tx.Exec(ctx, CreditPackageEarnings, enrollment.ProjectedPayout, enrollment.MemberID); err != nil {
		return nil, fmt.Errorf("failed to credit payout: %w", err)
	}

	if err = insertTransaction(ctx, tx, enrollment.MemberID, enrollment.ProjectedPayout, "Package Matured"); err != nil {
		return nil, err
	}

	if err = insertNotification(ctx, tx, enrollment.MemberID,
		fmt.Sprintf("Package matured. %s was credited to your earnings.", enrollment.ProjectedPayout.StringFixed(2))); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}

	enrollment.Status = models.EnrollmentCompleted
	return enrollment, nil
}

func scanEnrollment(row pgx.Row) (*models.EnrollmentData, error) {
	var e models.EnrollmentData
	err := row.Scan(
		&e.EnrollmentID, &e.MemberID, &e.PackageID, &e.Amount,
		&e.ProjectedPayout, &e.MaturityAt, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
