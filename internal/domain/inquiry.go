package domain

import (
	"strconv"
	"strings"
	"time"

	apperrors "pasteleria/internal/errors"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

const (
	MinGuests = 1
	MaxGuests = 10000
)

type Inquiry struct {
	ID        uint
	Name      string
	Email     string
	EventDate time.Time
	Guests    *string
	Details   *string
	Status    string
	CreatedAt time.Time
}

const (
	InquiryStatusPending    = "pending"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusCompleted  = "completed"
	InquiryStatusCancelled  = "cancelled"
)

var inquiryStatuses = []string{
	InquiryStatusPending,
	InquiryStatusInProgress,
	InquiryStatusCompleted,
	InquiryStatusCancelled,
}

func InquiryStatuses() []string {
	return append([]string(nil), inquiryStatuses...)
}

func IsValidInquiryStatus(status string) bool {
	for _, s := range inquiryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type InquiryInput struct {
	Name      string
	Email     string
	EventDate time.Time
	Guests    *string
	Details   *string
}

// NewInquiry runs the submission rules in order and stops at the first
// failure. today is the server's current time; only its date is used.
func NewInquiry(in InquiryInput, today time.Time) (Inquiry, error) {
	name := strings.TrimSpace(in.Name)
	if len([]rune(name)) < 2 {
		return Inquiry{}, apperrors.NewFieldError("name", "name too short")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !strings.Contains(email, "@") {
		return Inquiry{}, apperrors.NewFieldError("email", "invalid email")
	}

	if civilDate(in.EventDate).Before(civilDate(today)) {
		return Inquiry{}, apperrors.NewFieldError("eventDate", "event date in past")
	}

	guests := trimmedOrNil(in.Guests)
	if guests != nil {
		n, err := strconv.Atoi(*guests)
		if err != nil || n < MinGuests || n > MaxGuests {
			return Inquiry{}, apperrors.NewFieldError("guests", "guest count out of range")
		}
	}

	return Inquiry{
		Name:      name,
		Email:     email,
		EventDate: civilDate(in.EventDate),
		Guests:    guests,
		Details:   trimmedOrNil(in.Details),
		Status:    InquiryStatusPending,
	}, nil
}

// civilDate drops the clock part, keeping the calendar date as seen in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
