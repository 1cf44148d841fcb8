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
	"go.uber.org/zap"
)

// EnrollPackageHandler - enrolls the member into an investment package
func EnrollPackageHandler(s services.PackagesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.EnrollRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Warn("Invalid enroll request:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		created, err := s.Enroll(r.Context(), username, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientFunds):
				http.Error(w, "Insufficient funds", http.StatusPaymentRequired)
			case errors.Is(err, services.ErrBelowMinimum),
				errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrPackageInactive):
				http.Error(w, "Invalid request", http.StatusBadRequest)
			case errors.Is(err, services.ErrMemberInactive):
				http.Error(w, "Member is not active", http.StatusForbidden)
			default:
				logger.Error("Failed to enroll package:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toEnrollmentResponse(*created)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetEnrollmentsHandler - returns the member's package positions
func GetEnrollmentsHandler(s services.PackagesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		enrollments, err := s.Positions(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get enrollments:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(enrollments) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.EnrollmentResponse
		for _, enrollment := range enrollments {
			response = append(response, toEnrollmentResponse(enrollment))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	})
}

func toEnrollmentResponse(e models.EnrollmentData) models.EnrollmentResponse {
	amount, _ := e.Amount.Float64()
	payout, _ := e.ProjectedPayout.Float64()
	return models.EnrollmentResponse{
		EnrollmentID:    e.EnrollmentID,
		PackageID:       e.PackageID,
		Amount:          amount,
		ProjectedPayout: payout,
		MaturityAt:      e.MaturityAt.Format(time.RFC3339),
		Status:          e.Status,
	}
}
