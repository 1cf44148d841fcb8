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
	"github.com/elevateglobal/elevate-wallet/internal/validators"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WithdrawHandler - creates a withdrawal request, reserving the funds
func WithdrawHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.WithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Warn("Invalid withdrawal request:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if !validators.CheckAccountNumber(req.AccountNumber) {
			logger.Warn("Invalid account number format", req.AccountNumber)
			http.Error(w, "Invalid account number format", http.StatusUnprocessableEntity)
			return
		}

		created, err := s.Create(r.Context(), username, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientFunds):
				http.Error(w, "Insufficient funds", http.StatusPaymentRequired)
			case errors.Is(err, services.ErrBelowMinimum),
				errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrUnknownBucket):
				http.Error(w, "Invalid request", http.StatusBadRequest)
			case errors.Is(err, services.ErrMemberInactive):
				http.Error(w, "Member is not active", http.StatusForbidden)
			default:
				logger.Error("Failed to process withdrawal:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toWithdrawalResponse(*created)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetWithdrawalsHandler - returns the member's withdrawal history
func GetWithdrawalsHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		withdrawals, err := s.History(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get withdrawals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeWithdrawals(w, withdrawals)
	})
}

// GetPendingWithdrawalsHandler - withdrawal requests awaiting a decision
func GetPendingWithdrawalsHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withdrawals, err := s.Pending(r.Context())
		if err != nil {
			logger.Error("Failed to get pending withdrawals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeWithdrawals(w, withdrawals)
	})
}

// DecideWithdrawalHandler - applies an accounting decision on a request
func DecideWithdrawalHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		approver, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		requestID := chi.URLParam(r, "requestID")
		if requestID == "" {
			http.Error(w, "Request ID is required", http.StatusBadRequest)
			return
		}

		var decision models.WithdrawalDecision
		if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(decision); err != nil {
			logger.Warn("Invalid decision:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		updated, err := s.Decide(r.Context(), approver, requestID, decision)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyProcessed):
				http.Error(w, "Request has already been processed", http.StatusConflict)
			case errors.Is(err, services.ErrInvalidDecision):
				http.Error(w, "Invalid or missing status", http.StatusBadRequest)
			default:
				logger.Error("Failed to decide withdrawal:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(toWithdrawalResponse(*updated)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

func writeWithdrawals(w http.ResponseWriter, withdrawals []models.WithdrawalData) {
	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var response []models.WithdrawalResponse
	for _, withdrawal := range withdrawals {
		response = append(response, toWithdrawalResponse(withdrawal))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func toWithdrawalResponse(w models.WithdrawalData) models.WithdrawalResponse {
	amount, _ := w.Amount.Float64()
	fee, _ := w.Fee.Float64()
	net, _ := w.NetAmount.Float64()
	return models.WithdrawalResponse{
		RequestID: w.RequestID,
		Amount:    amount,
		Fee:       fee,
		NetAmount: net,
		Bucket:    string(w.Bucket),
		BankName:  w.BankName,
		Status:    w.Status,
		Note:      w.RejectNote,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
}
