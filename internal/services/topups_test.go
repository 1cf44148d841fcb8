package services

import (
	"context"
	"errors"
	"io"
	"strings"
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

// fakeStore records uploads and removals instead of touching the disk
type fakeStore struct {
	uploads   int
	removals  int
	uploadErr error
	lastPath  string
}

func (f *fakeStore) Upload(_ context.Context, name string, _ io.Reader) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	f.uploads++
	f.lastPath = "store/" + name
	return f.lastPath, "http://localhost:8080/attachments/" + name, nil
}

func (f *fakeStore) Remove(_ context.Context, path string) error {
	f.removals++
	if path != f.lastPath {
		return errors.New("unknown path")
	}
	return nil
}

func validTopUpAttachment() Attachment {
	return Attachment{
		Name:        "receipt.png",
		ContentType: "image/png",
		Size:        1024,
		Content:     strings.NewReader("png-bytes"),
	}
}

func TestTopUpsService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMembers := mocks.NewMockMembersStorage(ctrl)
	mockTopUps := mocks.NewMockTopUpsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	activeMember := &models.MemberData{MemberID: "1", Username: "mda", Active: true}
	request := models.TopUpRequest{
		Amount:        1500,
		PaymentMethod: "GCASH",
		AccountName:   "M. D. A.",
		AccountNumber: "09170000000",
	}

	testCases := []struct {
		Name             string
		Request          models.TopUpRequest
		Attachment       Attachment
		SetupMocks       func()
		ExpectedError    error
		ExpectedRemovals int
	}{
		{
			Name:       "Error. Member not found #1",
			Request:    request,
			Attachment: validTopUpAttachment(),
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(nil, storage.ErrMemberNotFound)
			},
			ExpectedError: storage.ErrMemberNotFound,
		},
		{
			Name:       "Error. Amount below range #2",
			Request:    models.TopUpRequest{Amount: 99, PaymentMethod: "GCASH", AccountName: "M. D. A.", AccountNumber: "09170000000"},
			Attachment: validTopUpAttachment(),
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
			},
			ExpectedError: ErrInvalidTopUpAmount,
		},
		{
			Name:       "Error. Amount above range #3",
			Request:    models.TopUpRequest{Amount: 10000000, PaymentMethod: "GCASH", AccountName: "M. D. A.", AccountNumber: "09170000000"},
			Attachment: validTopUpAttachment(),
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
			},
			ExpectedError: ErrInvalidTopUpAmount,
		},
		{
			Name:    "Error. Wrong attachment type #4",
			Request: request,
			Attachment: Attachment{
				Name:        "receipt.pdf",
				ContentType: "application/pdf",
				Size:        1024,
				Content:     strings.NewReader("pdf-bytes"),
			},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
			},
			ExpectedError: ErrInvalidAttachment,
		},
		{
			Name:    "Error. Oversized attachment #5",
			Request: request,
			Attachment: Attachment{
				Name:        "receipt.png",
				ContentType: "image/png",
				Size:        attachmentMaxSize + 1,
				Content:     strings.NewReader("png-bytes"),
			},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
			},
			ExpectedError: ErrInvalidAttachment,
		},
		{
			Name:       "Error. Insert fails, attachment removed again #6",
			Request:    request,
			Attachment: validTopUpAttachment(),
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
				mockTopUps.EXPECT().CreateTopUp(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to create top-up"))
			},
			ExpectedError:    errors.New("failed to create top-up"),
			ExpectedRemovals: 1,
		},
		{
			Name:       "Success. #7",
			Request:    request,
			Attachment: validTopUpAttachment(),
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
				mockTopUps.EXPECT().CreateTopUp(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, topUp models.TopUpData) (*models.TopUpData, error) {
						if !topUp.Amount.Equal(decimal.NewFromInt(1500)) {
							t.Errorf("Expected amount '1500', got: '%s'", topUp.Amount)
						}
						if topUp.AttachmentURL == "" {
							t.Errorf("Expected attachment URL, got none")
						}
						topUp.RequestID = "t1"
						topUp.Status = models.StatusPending
						return &topUp, nil
					})
			},
			ExpectedError: nil,
		},
		{
			Name:       "Error. Sub-cent amount rejected #8",
			Request:    models.TopUpRequest{Amount: 1500.005, PaymentMethod: "GCASH", AccountName: "M. D. A.", AccountNumber: "09170000000"},
			Attachment: validTopUpAttachment(),
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "mda").Return(activeMember, nil)
			},
			ExpectedError: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store := &fakeStore{}
			topUps := NewTopUps(mockMembers, mockTopUps, store, NoopNotifier{})
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := topUps.Create(ctx, "mda", tc.Request, tc.Attachment)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !strings.Contains(err.Error(), tc.ExpectedError.Error()) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if store.removals != tc.ExpectedRemovals {
				t.Errorf("Expected '%d' removals, got: '%d'", tc.ExpectedRemovals, store.removals)
			}
		})
	}
}

func TestTopUpsService_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockMembers := mocks.NewMockMembersStorage(ctrl)
	mockTopUps := mocks.NewMockTopUpsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	topUps := NewTopUps(mockMembers, mockTopUps, &fakeStore{}, NoopNotifier{})

	admin := &models.MemberData{MemberID: "9", Username: "admin", Role: models.RoleAdmin, Active: true}

	testCases := []struct {
		Name          string
		RequestID     string
		Decision      models.TopUpDecision
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Invalid decision status #1",
			RequestID:     "t1",
			Decision:      models.TopUpDecision{Status: "DONE"},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidDecision,
		},
		{
			Name:      "Error. Second approval rejected #2",
			RequestID: "t1",
			Decision:  models.TopUpDecision{Status: models.StatusApproved},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "admin").Return(admin, nil)
				mockTopUps.EXPECT().DecideTopUp(gomock.Any(), "t1", models.StatusApproved, "9", "").
					Return(nil, storage.ErrAlreadyProcessed)
			},
			ExpectedError: ErrAlreadyProcessed,
		},
		{
			Name:      "Success. Approval #3",
			RequestID: "t1",
			Decision:  models.TopUpDecision{Status: models.StatusApproved},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "admin").Return(admin, nil)
				mockTopUps.EXPECT().DecideTopUp(gomock.Any(), "t1", models.StatusApproved, "9", "").
					Return(&models.TopUpData{
						RequestID: "t1",
						MemberID:  "1",
						Amount:    decimal.NewFromInt(1500),
						Status:    models.StatusApproved,
					}, nil)
			},
			ExpectedError: nil,
		},
		{
			Name:      "Success. Rejection #4",
			RequestID: "t1",
			Decision:  models.TopUpDecision{Status: models.StatusRejected, Note: "no matching transfer"},
			SetupMocks: func() {
				mockMembers.EXPECT().GetMember(gomock.Any(), "admin").Return(admin, nil)
				mockTopUps.EXPECT().DecideTopUp(gomock.Any(), "t1", models.StatusRejected, "9", "no matching transfer").
					Return(&models.TopUpData{
						RequestID: "t1",
						MemberID:  "1",
						Amount:    decimal.NewFromInt(1500),
						Status:    models.StatusRejected,
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

			_, err := topUps.Decide(ctx, "admin", tc.RequestID, tc.Decision)

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
