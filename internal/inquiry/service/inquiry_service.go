package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"pasteleria/internal/domain"
	apperrors "pasteleria/internal/errors"
	"pasteleria/internal/notification"
)

type InquiryRepository interface {
	Insert(ctx context.Context, inq domain.Inquiry) (uint, error)
	FindAll(ctx context.Context) ([]domain.Inquiry, error)
	FindByID(ctx context.Context, id uint) (*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type InquiryService struct {
	repo     InquiryRepository
	notifier notification.Notifier
	clock    func() time.Time
	logger   *zap.Logger
}

func NewInquiryService(repo InquiryRepository, notifier notification.Notifier, clock func() time.Time, logger *zap.Logger) *InquiryService {
	return &InquiryService{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// SubmitInquiry validates and stores a custom-cake inquiry, then tells the
// business about it. The inquiry is kept even when the notification fails.
func (s *InquiryService) SubmitInquiry(ctx context.Context, in domain.InquiryInput) (*domain.Inquiry, error) {
	now := s.clock()

	inq, err := domain.NewInquiry(in, now)
	if err != nil {
		return nil, err
	}
	inq.CreatedAt = now.UTC().Truncate(time.Second)

	id, err := s.repo.Insert(ctx, inq)
	if err != nil {
		s.logger.Error("failed to insert inquiry", zap.String("email", inq.Email), zap.Error(err))
		return nil, err
	}
	inq.ID = id

	s.logger.Info("inquiry submitted",
		zap.Uint("inquiryId", id),
		zap.String("eventDate", inq.EventDate.Format(domain.DateLayout)),
	)

	s.notify(context.WithoutCancel(ctx), inq)
	return &inq, nil
}

func (s *InquiryService) notify(ctx context.Context, inq domain.Inquiry) {
	res := s.notifier.NotifyInquiry(ctx, notification.Inquiry{
		ID:        inq.ID,
		Name:      inq.Name,
		Email:     inq.Email,
		EventDate: inq.EventDate,
		Guests:    inq.Guests,
		Details:   inq.Details,
	})
	if !res.Delivered {
		s.logger.Warn("inquiry notification not delivered",
			zap.Uint("inquiryId", inq.ID),
			zap.String("channel", res.Channel),
			zap.Error(res.Err),
		)
		return
	}

	s.logger.Debug("inquiry notification delivered",
		zap.Uint("inquiryId", inq.ID),
		zap.String("channel", res.Channel),
	)
}

func (s *InquiryService) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	return s.repo.FindAll(ctx)
}

func (s *InquiryService) GetInquiry(ctx context.Context, id uint) (*domain.Inquiry, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InquiryService) UpdateInquiryStatus(ctx context.Context, id uint, status string) (*domain.Inquiry, error) {
	if !domain.IsValidInquiryStatus(status) {
		return nil, apperrors.NewFieldError("status",
			fmt.Sprintf("status must be one of %s", strings.Join(domain.InquiryStatuses(), ", ")))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info("inquiry status updated", zap.Uint("inquiryId", id), zap.String("status", status))
	return s.repo.FindByID(ctx, id)
}
