package dto

import (
	"time"

	apperrors "pasteleria/internal/errors"
)

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Code      string                       `json:"code"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
