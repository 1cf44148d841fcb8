package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/helpers"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// multipart form memory budget, the attachment itself is capped at 5MB
const topUpFormMaxMemory = 8 << 20

// TopUpHandler - creates a deposit request with its attachment
func TopUpHandler(s services.TopUpsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		if err := r.ParseMultipartForm(topUpFormMaxMemory); err != nil {
			logger.Warn("Invalid multipart form:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
		if err != nil {
			http.Error(w, "Invalid amount", http.StatusBadRequest)
			return
		}
		req := models.TopUpRequest{
			Amount:        amount,
			PaymentMethod: r.FormValue("payment_method"),
			AccountName:   r.FormValue("account_name"),
			AccountNumber: r.FormValue("account_number"),
		}
		if err := validate.Struct(req); err != nil {
			logger.Warn("Invalid top-up request:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Attachment is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		attachment := services.Attachment{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}

		created, err := s.Create(r.Context(), username, req, attachment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTopUpAmount),
				errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrInvalidAttachment):
				http.Error(w, "Invalid request", http.StatusBadRequest)
			case errors.Is(err, services.ErrMemberInactive):
				http.Error(w, "Member is not active", http.StatusForbidden)
			default:
				logger.Error("Failed to create top-up request:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toTopUpResponse(*created)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetTopUpsHandler - returns the member's deposit history
func GetTopUpsHandler(s services.TopUpsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		topUps, err := s.History(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get top-up requests:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeTopUps(w, topUps)
	})
}

// GetPendingTopUpsHandler - deposit requests awaiting a decision
func GetPendingTopUpsHandler(s services.TopUpsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		topUps, err := s.Pending(r.Context())
		if err != nil {
			logger.Error("Failed to get pending top-up requests:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeTopUps(w, topUps)
	})
}

// DecideTopUpHandler - applies an admin decision on a deposit request
func DecideTopUpHandler(s services.TopUpsService) http.HandlerFunc {
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

		var decision models.TopUpDecision
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
				logger.Error("Failed to decide top-up:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(toTopUpResponse(*updated)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

func writeTopUps(w http.ResponseWriter, topUps []models.TopUpData) {
	if len(topUps) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var response []models.TopUpResponse
	for _, topUp := range topUps {
		response = append(response, toTopUpResponse(topUp))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func toTopUpResponse(t models.TopUpData) models.TopUpResponse {
	amount, _ := t.Amount.Float64()
	return models.TopUpResponse{
		RequestID:     t.RequestID,
		Amount:        amount,
		PaymentMethod: t.PaymentMethod,
		AttachmentURL: t.AttachmentURL,
		Status:        t.Status,
		Note:          t.RejectNote,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}
