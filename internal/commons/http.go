package commons

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pasteleria/internal/dto"
	apperrors "pasteleria/internal/errors"
)

const maxBodyBytes = 1 << 20

// TraceID returns the request id set by the router middleware, or a fresh
// uuid when the handler runs without it.
func TraceID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.New().String()
}

func WriteJSON(w http.ResponseWriter, status int, data any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// WriteError maps an application error to its HTTP status and writes the
// error envelope. Unknown errors are logged and reported as 500 without
// leaking their message.
func WriteError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	resp := dto.ErrorResponse{
		TraceID:   traceID,
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		resp.Status, resp.Code, resp.Details = http.StatusBadRequest, "VALIDATION_ERROR", ve.Details
	} else if _, ok := apperrors.IsNotFoundError(err); ok {
		resp.Status, resp.Code = http.StatusNotFound, "NOT_FOUND"
	} else if _, ok := apperrors.IsDeadlockError(err); ok {
		resp.Status, resp.Code = http.StatusConflict, "DEADLOCK"
	} else if _, ok := apperrors.IsConflictError(err); ok {
		resp.Status, resp.Code = http.StatusConflict, "CONFLICT"
	} else {
		logger.Error("unexpected error", zap.String("traceId", traceID), zap.Error(err))
		resp.Status, resp.Code = http.StatusInternalServerError, "INTERNAL_ERROR"
		resp.Message = "an unexpected error occurred"
	}

	WriteJSON(w, resp.Status, resp, logger)
}

// DecodeJSON reads a single JSON object from the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperrors.NewFieldError(typeErr.Field, typeErr.Field+" has an invalid type")
		}
		return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
	}
	return nil
}

// PathID parses a positive integer URL parameter.
func PathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewFieldError(name, name+" must be a positive integer")
	}
	return uint(id), nil
}
