package storage

import (
	"context"
	"fmt"

	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertNotification = `INSERT INTO NOTIFICATIONS (id, member_id, message)
							VALUES ($1, $2, $3);`
	GetNotifications = `SELECT id, member_id, message, read, created_at
						FROM NOTIFICATIONS WHERE member_id=$1 ORDER BY created_at DESC;`
	MarkNotificationRead = `UPDATE NOTIFICATIONS SET read = TRUE WHERE id=$1 AND member_id=$2;`
)

type NotificationDatabase struct {
	DB *Database
}

// Builds the notifications storage
func NewNotificationsStorage(db *Database) NotificationsStorage {
	return &NotificationDatabase{DB: db}
}

// insertNotification writes a member-facing message inside the caller's
// transaction; the feed itself is not authoritative state.
func insertNotification(ctx context.Context, tx pgx.Tx, memberID string, message string) error {
	if _, err := tx.Exec(ctx, InsertNotification, uuid.New().String(), memberID, message); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (s *NotificationDatabase) GetNotifications(ctx context.Context, memberID string) ([]models.NotificationData, error) {
	var notifications []models.NotificationData
	rows, err := s.DB.Pool.Query(ctx, GetNotifications, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n models.NotificationData
		if err := rows.Scan(&n.NotificationID, &n.MemberID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return notifications, fmt.Errorf("failed scan notification data: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (s *NotificationDatabase) MarkNotificationRead(ctx context.Context, memberID string, notificationID string) error {
	tag, err := s.DB.Pool.Exec(ctx, MarkNotificationRead, notificationID, memberID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}
	return nil
}
