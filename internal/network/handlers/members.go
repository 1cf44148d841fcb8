package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/services"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterMemberHandler - registers a new member
func RegisterMemberHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var member models.MemberRequest
		if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(member); err != nil {
			logger.Warn("Invalid register request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := i.RegisterMember(r.Context(), member); err != nil {
			if errors.Is(err, services.ErrMemberAlreadyExists) {
				logger.Warn("Error register member", member.Username)
				http.Error(w, "username already exist", http.StatusConflict)
			} else {
				logger.Error("Error register member", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		// issue a token right away for the registered member
		token, err := i.GenerateJWT(member.Username, models.RoleMember)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		logger.Info("Member registered and authenticated", member.Username)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusCreated)
	})
}

// AuthenticateMemberHandler - authenticates a member
func AuthenticateMemberHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var member models.MemberRequest
		if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		profile, err := i.AuthenticateMember(r.Context(), member)
		if err != nil {
			logger.Error("Error authenticate member", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		if profile == nil {
			logger.Warn("Authentication failed", member.Username)
			http.Error(w, "Invalid username/password", http.StatusUnauthorized)
			return
		}

		token, err := i.GenerateJWT(profile.Username, profile.Role)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		logger.Info("Member authenticated", member.Username)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}
