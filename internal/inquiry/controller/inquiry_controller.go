package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"pasteleria/internal/commons"
	"pasteleria/internal/domain"
	"pasteleria/internal/dto"
	apperrors "pasteleria/internal/errors"
)

type InquiryService interface {
	SubmitInquiry(ctx context.Context, in domain.InquiryInput) (*domain.Inquiry, error)
	ListInquiries(ctx context.Context) ([]domain.Inquiry, error)
	GetInquiry(ctx context.Context, id uint) (*domain.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id uint, status string) (*domain.Inquiry, error)
}

type InquiryController struct {
	service InquiryService
	logger  *zap.Logger
}

func NewInquiryController(service InquiryService, logger *zap.Logger) *InquiryController {
	return &InquiryController{
		service: service,
		logger:  logger,
	}
}

func (c *InquiryController) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	var req dto.CreateInquiryRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}
	if err := commons.Validate(req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		commons.WriteError(w, traceID, apperrors.NewFieldError("eventDate", "eventDate must be a date formatted as YYYY-MM-DD"), c.logger)
		return
	}

	inquiry, err := c.service.SubmitInquiry(r.Context(), in)
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.NewInquiryResponse(*inquiry), c.logger)
}

func (c *InquiryController) ListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := c.service.ListInquiries(r.Context())
	if err != nil {
		commons.WriteError(w, commons.TraceID(r), err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewInquiryListResponse(inquiries), c.logger)
}

func (c *InquiryController) GetInquiry(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	id, err := commons.PathID(r, "inquiryId")
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	inquiry, err := c.service.GetInquiry(r.Context(), id)
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewInquiryResponse(*inquiry), c.logger)
}

func (c *InquiryController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := commons.TraceID(r)

	id, err := commons.PathID(r, "inquiryId")
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	var req dto.UpdateStatusRequest
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}
	if err := commons.Validate(req); err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	inquiry, err := c.service.UpdateInquiryStatus(r.Context(), id, req.Status)
	if err != nil {
		commons.WriteError(w, traceID, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewInquiryResponse(*inquiry), c.logger)
}
