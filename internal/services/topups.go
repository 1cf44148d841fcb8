package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/elevateglobal/elevate-wallet/internal/blob"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/models"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidTopUpAmount = errors.New("top-up amount out of range")
	ErrInvalidAttachment  = errors.New("invalid attachment")
)

// the 3-7 digit rule for deposits
var (
	topUpMinimum = decimal.NewFromInt(100)
	topUpMaximum = decimal.NewFromInt(9999999)
)

// Attachment - evidentiary image accompanying a deposit request
type Attachment struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

const (
	attachmentMaxSize = 5 << 20
)

type TopUpsService interface {
	Create(ctx context.Context, username string, request models.TopUpRequest, attachment Attachment) (*models.TopUpData, error)
	Decide(ctx context.Context, approver string, requestID string, decision models.TopUpDecision) (*models.TopUpData, error)
	History(ctx context.Context, username string) ([]models.TopUpData, error)
	Pending(ctx context.Context) ([]models.TopUpData, error)
}

type TopUps struct {
	Members     storage.MembersStorage
	TopUps      storage.TopUpsStorage
	Attachments blob.Store
	Notifier    Notifier
}

// Builds the top-ups service
func NewTopUps(members storage.MembersStorage, topUps storage.TopUpsStorage, attachments blob.Store, notifier Notifier) TopUpsService {
	return &TopUps{Members: members, TopUps: topUps, Attachments: attachments, Notifier: notifier}
}

// Create uploads the attachment first and then records the pending request.
// When the insert fails the uploaded object is removed again, so the store
// and attachments never diverge.
func (s *TopUps) Create(ctx context.Context, username string, request models.TopUpRequest, attachment Attachment) (*models.TopUpData, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return nil, err
	}
	if !member.Active {
		return nil, ErrMemberInactive
	}

	amount, err := parseAmount(request.Amount)
	if err != nil {
		return nil, err
	}
	if amount.LessThan(topUpMinimum) || amount.GreaterThan(topUpMaximum) {
		return nil, ErrInvalidTopUpAmount
	}

	if err := validateAttachment(attachment); err != nil {
		return nil, err
	}

	path, url, err := s.Attachments.Upload(ctx, attachment.Name, attachment.Content)
	if err != nil {
		logger.Error("Failed to upload attachment", zap.Error(err))
		return nil, fmt.Errorf("attachment upload: %w", err)
	}

	topUp := models.TopUpData{
		MemberID:      member.MemberID,
		Amount:        amount,
		PaymentMethod: request.PaymentMethod,
		AccountName:   request.AccountName,
		AccountNumber: request.AccountNumber,
		AttachmentURL: url,
	}

	created, err := s.TopUps.CreateTopUp(ctx, topUp)
	if err != nil {
		// compensating action: the record failed, drop the orphaned object
		if rmErr := s.Attachments.Remove(ctx, path); rmErr != nil {
			logger.Error("Failed to remove orphaned attachment", zap.Error(rmErr))
		}
		logger.Error("Failed to create top-up request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func validateAttachment(attachment Attachment) error {
	if attachment.Content == nil || attachment.Size <= 0 || attachment.Size > attachmentMaxSize {
		return ErrInvalidAttachment
	}
	switch attachment.ContentType {
	case "image/jpeg", "image/png":
		return nil
	}
	return ErrInvalidAttachment
}

// Decide applies the admin decision. Approval credits the wallet exactly
// once; the PENDING precondition in the storage guards repeated calls.
func (s *TopUps) Decide(ctx context.Context, approver string, requestID string, decision models.TopUpDecision) (*models.TopUpData, error) {
	if decision.Status != models.StatusApproved && decision.Status != models.StatusRejected {
		return nil, ErrInvalidDecision
	}

	member, err := s.Members.GetMember(ctx, approver)
	if err != nil {
		logger.Error("Failed to get approver", zap.Error(err))
		return nil, err
	}

	updated, err := s.TopUps.DecideTopUp(ctx, requestID, decision.Status, member.MemberID, decision.Note)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyProcessed) {
			return nil, ErrAlreadyProcessed
		}
		logger.Error("Failed to decide top-up", zap.Error(err))
		return nil, err
	}

	s.Notifier.Notify(ctx, updated.MemberID,
		fmt.Sprintf("Deposit Request %s", decision.Status),
		fmt.Sprintf("Your deposit of %s has been %s.", updated.Amount.StringFixed(2), decision.Status))

	return updated, nil
}

// History returns all top-up requests of the member.
func (s *TopUps) History(ctx context.Context, username string) ([]models.TopUpData, error) {
	member, err := s.Members.GetMember(ctx, username)
	if err != nil {
		logger.Error("Failed to get member", zap.Error(err))
		return nil, err
	}

	topUps, err := s.TopUps.GetTopUps(ctx, member.MemberID)
	if err != nil {
		logger.Error("Failed to get top-up requests:", zap.Error(err))
		return nil, err
	}
	return topUps, nil
}

// Pending returns the requests awaiting an admin decision.
func (s *TopUps) Pending(ctx context.Context) ([]models.TopUpData, error) {
	topUps, err := s.TopUps.GetTopUpsByStatus(ctx, models.StatusPending)
	if err != nil {
		logger.Error("Failed to get pending top-up requests:", zap.Error(err))
		return nil, err
	}
	return topUps, nil
}
