package notification

import (
	"context"
	"time"
)

const (
	ChannelSMTP  = "smtp"
	ChannelQueue = "amqp"
	ChannelLog   = "log"
)

// Inquiry is the part of a custom-cake inquiry the business is told about.
type Inquiry struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	EventDate time.Time `json:"eventDate"`
	Guests    *string   `json:"guests,omitempty"`
	Details   *string   `json:"details,omitempty"`
}

// Result describes the outcome of one delivery attempt. Delivery failures
// are reported here instead of being returned as errors, so callers decide
// whether a failed notification matters.
type Result struct {
	Delivered bool
	Channel   string
	Err       error
}

func Delivered(channel string) Result {
	return Result{Delivered: true, Channel: channel}
}

func Failed(channel string, err error) Result {
	return Result{Channel: channel, Err: err}
}

type Notifier interface {
	NotifyInquiry(ctx context.Context, inquiry Inquiry) Result
}
