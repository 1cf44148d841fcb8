package services

import (
	"context"
	"errors"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/config"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMemberAlreadyExists = errors.New("member already exists")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

type IdentityService interface {
	RegisterMember(ctx context.Context, member models.MemberRequest) error
	AuthenticateMember(ctx context.Context, member models.MemberRequest) (*models.MemberData, error)
	GenerateJWT(username string, role string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Members storage.MembersStorage
}

// Builds the identity service
func NewIdentity(cfg config.Config, members storage.MembersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Members: members}
}

// Registers a new member. A fresh earnings record is created alongside by the
// storage, every member always carries the MEMBER role at registration.
func (i *Identity) RegisterMember(ctx context.Context, member models.MemberRequest) error {
	logger.Info("Register member:", member.Username)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(member.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	err = i.Members.AddMember(ctx, member.Username, string(hashedPassword), models.RoleMember)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("Member already exist", member.Username)
			return ErrMemberAlreadyExists
		}
		logger.Error("Error registering member", member.Username, err)
		return err
	}
	return nil
}

// Authenticates the member, returns the profile for the token claims.
func (i *Identity) AuthenticateMember(ctx context.Context, member models.MemberRequest) (*models.MemberData, error) {
	logger.Info("Authenticate member", member.Username)

	stored, err := i.Members.GetMember(ctx, member.Username)
	if err != nil {
		if errors.Is(err, storage.ErrMemberNotFound) {
			return nil, nil
		}
		logger.Error("Error getting member", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(member.Password)); err != nil {
		logger.Warn("Invalid password", member.Username)
		return nil, nil
	}

	logger.Info("Member authenticated", member.Username)
	return stored, nil
}

// Builds the JWT token string, the role claim drives route authorization.
func (i *Identity) GenerateJWT(username string, role string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": username,
		"role":     role,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Returns the JWTAuth pointer (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
