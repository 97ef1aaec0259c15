package notification

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var ErrNoChannel = errors.New("no notification channel configured")

// LogNotifier writes the inquiry to the log. Nobody receives it, so the
// result always reports a failed delivery.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyInquiry(_ context.Context, inquiry Inquiry) Result {
	n.logger.Info("inquiry notification not sent, logging only",
		zap.Uint("inquiryId", inquiry.ID),
		zap.String("email", inquiry.Email),
		zap.Time("eventDate", inquiry.EventDate),
	)
	return Failed(ChannelLog, ErrNoChannel)
}
