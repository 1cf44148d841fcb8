package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	InsertMember = `INSERT INTO MEMBERS (id, username, password, role)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (username) DO NOTHING
						RETURNING username;`
	InsertEarnings = `INSERT INTO EARNINGS (member_id) VALUES ($1);`

	GetMember     = `SELECT id, username, password, role, active FROM MEMBERS WHERE username=$1;`
	GetMemberByID = `SELECT id, username, password, role, active FROM MEMBERS WHERE id=$1;`
)

type MemberDatabase struct {
	DB *Database
}

// Builds the members storage
func NewMembersStorage(db *Database) MembersStorage {
	return &MemberDatabase{DB: db}
}

// AddMember - inserts a member together with an empty earnings record in one
// transaction, so every member always owns a ledger row.
func (s *MemberDatabase) AddMember(ctx context.Context, username string, passwordHash string, role string) error {
	memberID := uuid.New().String()

	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddMember. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var prevUsername string
	err = tx.QueryRow(ctx, InsertMember, memberID, username, passwordHash, role).Scan(&prevUsername)
	if err != nil {
		// unique violation (code 23505) means the username is taken
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add member: %w", err)
	}

	if _, err = tx.Exec(ctx, InsertEarnings, memberID); err != nil {
		return fmt.Errorf("failed to add earnings record: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *MemberDatabase) GetMember(ctx context.Context, username string) (*models.MemberData, error) {
	return s.getMember(ctx, GetMember, username)
}

func (s *MemberDatabase) GetMemberByID(ctx context.Context, memberID string) (*models.MemberData, error) {
	return s.getMember(ctx, GetMemberByID, memberID)
}

func (s *MemberDatabase) getMember(ctx context.Context, query string, key string) (*models.MemberData, error) {
	var (
		memberID string
		username string
		password string
		role     string
		active   bool
	)
	err := s.DB.Pool.QueryRow(ctx, query, key).Scan(&memberID, &username, &password, &role, &active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &models.MemberData{
		MemberID:     memberID,
		Username:     username,
		PasswordHash: password,
		Role:         role,
		Active:       active,
	}, nil
}
