package services

import (
	"context"
	"testing"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/config"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/elevateglobal/elevate-wallet/internal/storage/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestWithdrawalsService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMembers := mocks.NewMockMembersStorage(ctrl)
	mockEarnings := mocks.NewMockEarningsStorage(ctrl)
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockMembers, mockEarnings, mockWithdrawals, NoopNotifier{})

	activeMember := &models.MemberData{MemberID: "1", Username: "mda", Active: true}
	request := models.WithdrawalRequest{
		Amount:        500,
		Bucket:        "TOTAL",
		BankName:      "BPI",
		AccountName:   "M. D. A.",
		AccountNumber: "1234567890",
	}

	testCases := []struct {
		Name          string
		Username      string
		Request       models.WithdrawalRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:     "Error. Member not found #1",
			Username: "mda",
			Request:  request,
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(nil, storage.ErrMemberNotFound)
			},
			ExpectedError: storage.ErrMemberNotFound,
		},
		{
			Name:     "Error. Member not active #2",
			Username: "mda",
			Request:  request,
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(&models.MemberData{MemberID: "1", Active: false}, nil)
			},
			ExpectedError: ErrMemberInactive,
		},
		{
			Name:     "Error. Unknown bucket #3",
			Username: "mda",
			Request: models.WithdrawalRequest{
				Amount: 500, Bucket: "WALLET", BankName: "BPI", AccountName: "M. D. A.", AccountNumber: "1234567890",
			},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
			},
			ExpectedError: ErrUnknownBucket,
		},
		{
			Name:     "Error. Below minimum #4",
			Username: "mda",
			Request: models.WithdrawalRequest{
				Amount: 199, Bucket: "TOTAL", BankName: "BPI", AccountName: "M. D. A.", AccountNumber: "1234567890",
			},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
			},
			ExpectedError: ErrBelowMinimum,
		},
		{
			Name:     "Error. Amount over the combined ceiling #5",
			Username: "mda",
			Request:  request,
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
				mockEarnings.EXPECT().GetEarnings(gomock.Any(), "1").Return(&models.EarningsData{
					MemberID:        "1",
					PackageEarnings: decimal.NewFromInt(300),
					ReferralBounty:  decimal.NewFromInt(100),
					Combined:        decimal.NewFromInt(400),
				}, nil)
			},
			ExpectedError: ErrInsufficientFunds,
		},
		{
			Name:     "Error. Referral selector over the bounty #6",
			Username: "mda",
			Request: models.WithdrawalRequest{
				Amount: 500, Bucket: "DIRECT_REFERRAL", BankName: "BPI", AccountName: "M. D. A.", AccountNumber: "1234567890",
			},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
				mockEarnings.EXPECT().GetEarnings(gomock.Any(), "1").Return(&models.EarningsData{
					MemberID:        "1",
					PackageEarnings: decimal.NewFromInt(1000),
					ReferralBounty:  decimal.NewFromInt(100),
					Combined:        decimal.NewFromInt(1100),
				}, nil)
			},
			ExpectedError: ErrInsufficientFunds,
		},
		{
			Name:     "Error. Storage rejects under the row lock #7",
			Username: "mda",
			Request:  request,
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
				mockEarnings.EXPECT().GetEarnings(gomock.Any(), "1").Return(&models.EarningsData{
					MemberID:        "1",
					PackageEarnings: decimal.NewFromInt(400),
					ReferralBounty:  decimal.NewFromInt(200),
					Combined:        decimal.NewFromInt(600),
				}, nil)
				mockWithdrawals.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInsufficientFunds)
			},
			ExpectedError: ErrInsufficientFunds,
		},
		{
			Name:     "Success. #8",
			Username: "mda",
			Request:  request,
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
				mockEarnings.EXPECT().GetEarnings(gomock.Any(), "1").Return(&models.EarningsData{
					MemberID:        "1",
					PackageEarnings: decimal.NewFromInt(400),
					ReferralBounty:  decimal.NewFromInt(200),
					Combined:        decimal.NewFromInt(600),
				}, nil)
				mockWithdrawals.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, withdrawal models.WithdrawalData) (*models.WithdrawalData, error) {
						if !withdrawal.Fee.Equal(decimal.NewFromInt(50)) {
							t.Errorf("Expected fee '50', got: '%s'", withdrawal.Fee)
						}
						if !withdrawal.NetAmount.Equal(decimal.NewFromInt(450)) {
							t.Errorf("Expected net amount '450', got: '%s'", withdrawal.NetAmount)
						}
						withdrawal.RequestID = "r1"
						withdrawal.Status = models.StatusPending
						return &withdrawal, nil
					})
			},
			ExpectedError: nil,
		},
		{
			Name:     "Error. Sub-cent amount rejected #9",
			Username: "mda",
			Request: models.WithdrawalRequest{
				Amount: 200.005, Bucket: "TOTAL", BankName: "BPI", AccountName: "M. D. A.", AccountNumber: "1234567890",
			},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
			},
			ExpectedError: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			created, err := withdrawals.Create(ctx, tc.Username, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && created != nil && created.Status != models.StatusPending {
				t.Errorf("Expected status '%s', got: '%s'", models.StatusPending, created.Status)
			}
		})
	}
}

func TestWithdrawalsService_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMembers := mocks.NewMockMembersStorage(ctrl)
	mockEarnings := mocks.NewMockEarningsStorage(ctrl)
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockMembers, mockEarnings, mockWithdrawals, NoopNotifier{})

	approver := &models.MemberData{MemberID: "9", Username: "acct", Role: models.RoleAccounting, Active: true}

	testCases := []struct {
		Name          string
		RequestID     string
		Decision      models.WithdrawalDecision
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Invalid decision status #1",
			RequestID:     "r1",
			Decision:      models.WithdrawalDecision{Status: "PENDING"},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidDecision,
		},
		{
			Name:      "Error. Request already processed #2",
			RequestID: "r1",
			Decision:  models.WithdrawalDecision{Status: models.StatusApproved},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "acct").Return(approver, nil)
				mockWithdrawals.EXPECT().DecideWithdrawal(gomock.Any(), "r1", models.StatusApproved, "9", "").
					Return(nil, storage.ErrAlreadyProcessed)
			},
			ExpectedError: ErrAlreadyProcessed,
		},
		{
			Name:      "Error. Request not found #3",
			RequestID: "missing",
			Decision:  models.WithdrawalDecision{Status: models.StatusRejected},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "acct").Return(approver, nil)
				mockWithdrawals.EXPECT().DecideWithdrawal(gomock.Any(), "missing", models.StatusRejected, "9", "").
					Return(nil, storage.ErrRequestNotFound)
			},
			ExpectedError: storage.ErrRequestNotFound,
		},
		{
			Name:      "Success. Rejection with a note #4",
			RequestID: "r1",
			Decision:  models.WithdrawalDecision{Status: models.StatusRejected, Note: "blurred receipt"},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "acct").Return(approver, nil)
				mockWithdrawals.EXPECT().DecideWithdrawal(gomock.Any(), "r1", models.StatusRejected, "9", "blurred receipt").
					Return(&models.WithdrawalData{
						RequestID: "r1",
						MemberID:  "1",
						NetAmount: decimal.NewFromInt(450),
						Status:    models.StatusRejected,
					}, nil)
			},
			ExpectedError: nil,
		},
		{
			Name:      "Success. Approval #5",
			RequestID: "r1",
			Decision:  models.WithdrawalDecision{Status: models.StatusApproved},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "acct").Return(approver, nil)
				mockWithdrawals.EXPECT().DecideWithdrawal(gomock.Any(), "r1", models.StatusApproved, "9", "").
					Return(&models.WithdrawalData{
						RequestID: "r1",
						MemberID:  "1",
						NetAmount: decimal.NewFromInt(450),
						Status:    models.StatusApproved,
					}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := withdrawals.Decide(ctx, "acct", tc.RequestID, tc.Decision)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}
