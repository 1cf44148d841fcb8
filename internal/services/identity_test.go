package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/config"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/elevateglobal/elevate-wallet/internal/storage/mocks"
	"golang.org/x/crypto/bcrypt"

	"go.uber.org/mock/gomock"
)

func TestNewIdentityService(t *testing.T) {
	t.Run("Identity_CreatesService", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockMembers := mocks.NewMockMembersStorage(ctrl)

		config := config.DefaultConfig()
		identity := NewIdentity(config, mockMembers)
		baseService, ok := identity.(*Identity)
		if !ok {
			t.Fatalf("Expected *Identity, got: '%T'", identity)
		}
		if baseService == nil || baseService.JWTAuth == nil {
			t.Errorf("Expected Identity to be initialized with JWTAuth")
		}
		if baseService.Members != mockMembers {
			t.Errorf("Expected Identity to be initialized with provided storage")
		}
	})
}

func TestRegisterMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMembers := mocks.NewMockMembersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name          string
		setupMocks    func()
		expectedError error
		member        models.MemberRequest
	}{
		{
			name: "Register Member: Success #1",
			setupMocks: func() {
				mockMembers.EXPECT().AddMember(gomock.Any(), "mda", gomock.Any(), models.RoleMember).Return(nil)
			},
			expectedError: nil,
			member:        models.MemberRequest{Username: "mda", Password: "test_pass"},
		},
		{
			name: "Register Member: ErrMemberAlreadyExists #2",
			setupMocks: func() {
				mockMembers.EXPECT().AddMember(gomock.Any(), "mda", gomock.Any(), models.RoleMember).Return(storage.ErrAlreadyExists)
			},
			expectedError: ErrMemberAlreadyExists,
			member:        models.MemberRequest{Username: "mda", Password: "test_pass"},
		},
		{
			name: "Register Member: Undefined error #3",
			setupMocks: func() {
				mockMembers.EXPECT().AddMember(gomock.Any(), "mda", gomock.Any(), models.RoleMember).Return(errors.New("failed to add member"))
			},
			expectedError: errors.New("failed to add member"),
			member:        models.MemberRequest{Username: "mda", Password: "test_pass"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockMembers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := identity.RegisterMember(ctx, tc.member)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestAuthenticateMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMembers := mocks.NewMockMembersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("test_pass"), bcrypt.DefaultCost)

	testCases := []struct {
		name          string
		mockReturn    func(ctx context.Context, username string) (*models.MemberData, error)
		member        models.MemberRequest
		expectedAuth  bool
		expectedError error
	}{
		{
			name: "AuthenticateMember Success #1",
			mockReturn: func(ctx context.Context, username string) (*models.MemberData, error) {
				return &models.MemberData{MemberID: "1", Username: "mda", PasswordHash: string(passwordHash), Role: models.RoleMember, Active: true}, nil
			},
			member:        models.MemberRequest{Username: "mda", Password: "test_pass"},
			expectedAuth:  true,
			expectedError: nil,
		},
		{
			name: "AuthenticateMember MemberNotFound #2",
			mockReturn: func(ctx context.Context, username string) (*models.MemberData, error) {
				return nil, storage.ErrMemberNotFound
			},
			member:        models.MemberRequest{Username: "mda", Password: "test_pass"},
			expectedAuth:  false,
			expectedError: nil,
		},
		{
			name: "AuthenticateMember InvalidPassword #3",
			mockReturn: func(ctx context.Context, username string) (*models.MemberData, error) {
				return &models.MemberData{MemberID: "1", Username: "mda", PasswordHash: string("test_pass")}, nil
			},
			member:        models.MemberRequest{Username: "mda", Password: "test_pass"},
			expectedAuth:  false,
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockMembers.EXPECT().GetMember(gomock.Any(), gomock.Any()).DoAndReturn(tc.mockReturn)

			identity := NewIdentity(config, mockMembers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			authenticated, err := identity.AuthenticateMember(ctx, tc.member)

			if (authenticated != nil) != tc.expectedAuth {
				t.Errorf("Expected authenticated %v, got %v", tc.expectedAuth, authenticated != nil)
			}

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}
