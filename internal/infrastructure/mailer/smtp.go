package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"pasteleria/internal/config"
	"pasteleria/internal/notification"
)

const implicitTLSPort = 465

type sendFunc func(ctx context.Context, msg *mail.Msg) error

// SMTPNotifier mails inquiry notifications to the business inbox. Sends go
// through a circuit breaker so an unreachable server is not dialed on every
// inquiry.
type SMTPNotifier struct {
	cfg     config.SMTPConfig
	timeout time.Duration
	send    sendFunc
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *zap.Logger
}

func NewSMTPNotifier(cfg config.SMTPConfig, timeout time.Duration, logger *zap.Logger) *SMTPNotifier {
	n := &SMTPNotifier{
		cfg:     cfg,
		timeout: timeout,
		logger:  logger,
	}
	n.send = n.dialAndSend
	n.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("mail circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return n
}

func (n *SMTPNotifier) NotifyInquiry(ctx context.Context, inquiry notification.Inquiry) notification.Result {
	content, err := notification.Render(inquiry)
	if err != nil {
		return notification.Failed(notification.ChannelSMTP, err)
	}
	msg, err := BuildMessage(n.cfg.From, n.cfg.To, content)
	if err != nil {
		return notification.Failed(notification.ChannelSMTP, err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	_, err = n.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, n.send(ctx, msg)
	})
	if err != nil {
		return notification.Failed(notification.ChannelSMTP, err)
	}
	return notification.Delivered(notification.ChannelSMTP)
}

// BuildMessage addresses a plain text message from the rendered content.
func BuildMessage(from, to string, content notification.Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	msg.Subject(content.Subject)
	msg.SetBodyString(mail.TypeTextPlain, content.Body)
	return msg, nil
}

// clientOptions picks implicit TLS on 465 and opportunistic STARTTLS
// elsewhere. PLAIN auth is only offered when a username is configured.
func (n *SMTPNotifier) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(n.timeout),
	}
	if n.cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}
	return opts
}

func (n *SMTPNotifier) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(n.cfg.Host, n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail via %s:%d: %w", n.cfg.Host, n.cfg.Port, err)
	}
	return nil
}
