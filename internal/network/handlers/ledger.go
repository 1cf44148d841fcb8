package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/helpers"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/services"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetBalanceHandler - returns the four bucket balances of the member
func GetBalanceHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		balance, err := l.GetBalance(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get member balance:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(balance); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	})
}

// GetTransactionsHandler - returns the member's audit history
func GetTransactionsHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		transactions, err := l.GetTransactions(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get transactions:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(transactions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.TransactionResponse
		for _, transaction := range transactions {
			amount, _ := transaction.Amount.Float64()
			response = append(response, models.TransactionResponse{
				Amount:      amount,
				Description: transaction.Description,
				CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	})
}

// GetNotificationsHandler - returns the member's notification feed
func GetNotificationsHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		notifications, err := l.GetNotifications(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get notifications:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(notifications) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.NotificationResponse
		for _, notification := range notifications {
			response = append(response, models.NotificationResponse{
				NotificationID: notification.NotificationID,
				Message:        notification.Message,
				Read:           notification.Read,
				CreatedAt:      notification.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	})
}

// MarkNotificationReadHandler - flags a notification as read
func MarkNotificationReadHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		notificationID := chi.URLParam(r, "notificationID")
		if notificationID == "" {
			http.Error(w, "Notification ID is required", http.StatusBadRequest)
			return
		}

		if err := l.MarkNotificationRead(r.Context(), username, notificationID); err != nil {
			if errors.Is(err, storage.ErrRequestNotFound) {
				http.Error(w, "Notification not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to mark notification read:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
