package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pasteleria/internal/domain"
	"pasteleria/internal/dto"
	apperrors "pasteleria/internal/errors"
)

type mockInquiryService struct {
	SubmitInquiryFunc       func(ctx context.Context, in domain.InquiryInput) (*domain.Inquiry, error)
	ListInquiriesFunc       func(ctx context.Context) ([]domain.Inquiry, error)
	GetInquiryFunc          func(ctx context.Context, id uint) (*domain.Inquiry, error)
	UpdateInquiryStatusFunc func(ctx context.Context, id uint, status string) (*domain.Inquiry, error)
}

func (m *mockInquiryService) SubmitInquiry(ctx context.Context, in domain.InquiryInput) (*domain.Inquiry, error) {
	return m.SubmitInquiryFunc(ctx, in)
}

func (m *mockInquiryService) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	return m.ListInquiriesFunc(ctx)
}

func (m *mockInquiryService) GetInquiry(ctx context.Context, id uint) (*domain.Inquiry, error) {
	return m.GetInquiryFunc(ctx, id)
}

func (m *mockInquiryService) UpdateInquiryStatus(ctx context.Context, id uint, status string) (*domain.Inquiry, error) {
	return m.UpdateInquiryStatusFunc(ctx, id, status)
}

func newRouter(svc InquiryService) http.Handler {
	c := NewInquiryController(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/inquiries", c.ListInquiries)
	r.Post("/inquiries", c.SubmitInquiry)
	r.Get("/inquiries/{inquiryId}", c.GetInquiry)
	r.Put("/inquiries/{inquiryId}/status", c.UpdateStatus)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSubmitInquiry_Created(t *testing.T) {
	var got domain.InquiryInput
	svc := &mockInquiryService{
		SubmitInquiryFunc: func(ctx context.Context, in domain.InquiryInput) (*domain.Inquiry, error) {
			got = in
			inq, err := domain.NewInquiry(in, time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC))
			inq.ID = 5
			return &inq, err
		},
	}

	body := `{"name":"Lucia","email":"lucia@example.com","eventDate":"2026-12-12","guests":120,"details":"Three tiers"}`
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inquiries", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got.Guests)
	assert.Equal(t, "120", *got.Guests)

	var resp dto.InquiryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(5), resp.ID)
	assert.Equal(t, "2026-12-12", resp.EventDate)
	assert.Equal(t, domain.InquiryStatusPending, resp.Status)
}

func TestSubmitInquiry_MalformedEventDate(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"name":"Lucia","email":"lucia@example.com","eventDate":"12/12/2026"}`
	newRouter(&mockInquiryService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inquiries", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "eventDate", decodeError(t, rec).Details[0].Field)
}

func TestSubmitInquiry_DomainValidation(t *testing.T) {
	svc := &mockInquiryService{
		SubmitInquiryFunc: func(ctx context.Context, in domain.InquiryInput) (*domain.Inquiry, error) {
			return nil, apperrors.NewFieldError("name", "name too short")
		},
	}

	rec := httptest.NewRecorder()
	body := `{"name":"L","email":"lucia@example.com","eventDate":"2026-12-12"}`
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/inquiries", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Equal(t, "name too short", resp.Details[0].Message)
}

func TestGetInquiry_NotFound(t *testing.T) {
	svc := &mockInquiryService{
		GetInquiryFunc: func(ctx context.Context, id uint) (*domain.Inquiry, error) {
			return nil, apperrors.NewNotFoundError("inquiry with id 8 not found")
		},
	}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inquiries/8", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestListInquiries_EmptyIsArray(t *testing.T) {
	svc := &mockInquiryService{
		ListInquiriesFunc: func(ctx context.Context) ([]domain.Inquiry, error) {
			return []domain.Inquiry{}, nil
		},
	}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inquiries", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateInquiryStatus_MissingStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&mockInquiryService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/inquiries/1/status", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status", decodeError(t, rec).Details[0].Field)
}

func TestUpdateInquiryStatus_OK(t *testing.T) {
	svc := &mockInquiryService{
		UpdateInquiryStatusFunc: func(ctx context.Context, id uint, status string) (*domain.Inquiry, error) {
			return &domain.Inquiry{ID: id, Name: "Lucia", Status: status}, nil
		},
	}

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/inquiries/4/status", strings.NewReader(`{"status":"in_progress"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.InquiryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "in_progress", resp.Status)
}
