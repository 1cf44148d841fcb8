package helpers

import (
	"context"
	"fmt"

	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetUsername - extracts the member username from the JWT token context
func GetUsername(ctx context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	username, ok := claims["username"].(string)
	if !ok {
		logger.Warn("Undefined username from token")
		return "", fmt.Errorf("undefined username")
	}
	return username, nil
}

// GetRole - extracts the member role from the JWT token context
func GetRole(ctx context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	role, ok := claims["role"].(string)
	if !ok {
		logger.Warn("Undefined role from token")
		return "", fmt.Errorf("undefined role")
	}
	return role, nil
}
