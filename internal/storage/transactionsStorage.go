package storage

import (
	"context"
	"fmt"

	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	InsertTransaction = `INSERT INTO TRANSACTIONS (id, member_id, amount, description)
							VALUES ($1, $2, $3, $4);`
	GetTransactions = `SELECT id, member_id, amount, description, created_at
						FROM TRANSACTIONS WHERE member_id=$1 ORDER BY created_at DESC;`
)

type TransactionDatabase struct {
	DB *Database
}

// Builds the transactions storage
func NewTransactionsStorage(db *Database) TransactionsStorage {
	return &TransactionDatabase{DB: db}
}

// insertTransaction appends an audit entry inside the caller's transaction.
// Every ledger-affecting transition writes one.
func insertTransaction(ctx context.Context, tx pgx.Tx, memberID string, amount decimal.Decimal, description string) error {
	if _, err := tx.Exec(ctx, InsertTransaction, uuid.New().String(), memberID, amount, description); err != nil {
		return fmt.Errorf("failed to insert transaction entry: %w", err)
	}
	return nil
}

func (s *TransactionDatabase) GetTransactions(ctx context.Context, memberID string) ([]models.TransactionData, error) {
	var transactions []models.TransactionData
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t models.TransactionData
		if err := rows.Scan(&t.TransactionID, &t.MemberID, &t.Amount, &t.Description, &t.CreatedAt); err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
