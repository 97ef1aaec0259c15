package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"pasteleria/internal/notification"
)

// Publisher is the subset of *amqp.Channel used to publish notifications.
type Publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// InquiryMessage is the JSON payload put on the queue. A mail worker
// consumes it and delivers Subject and Body.
type InquiryMessage struct {
	Inquiry notification.Inquiry `json:"inquiry"`
	Subject string               `json:"subject"`
	Body    string               `json:"body"`
}

// QueueNotifier hands inquiry notifications to a durable RabbitMQ queue.
type QueueNotifier struct {
	mu        sync.Mutex
	publisher Publisher
	queue     string
	logger    *zap.Logger
}

func NewQueueNotifier(publisher Publisher, queue string, logger *zap.Logger) *QueueNotifier {
	return &QueueNotifier{publisher: publisher, queue: queue, logger: logger}
}

func (n *QueueNotifier) NotifyInquiry(ctx context.Context, inquiry notification.Inquiry) notification.Result {
	if err := ctx.Err(); err != nil {
		return notification.Failed(notification.ChannelQueue, err)
	}

	msg, err := notification.Render(inquiry)
	if err != nil {
		return notification.Failed(notification.ChannelQueue, err)
	}
	body, err := json.Marshal(InquiryMessage{Inquiry: inquiry, Subject: msg.Subject, Body: msg.Body})
	if err != nil {
		return notification.Failed(notification.ChannelQueue, fmt.Errorf("marshaling inquiry message: %w", err))
	}

	n.mu.Lock()
	err = n.publisher.Publish("", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	n.mu.Unlock()
	if err != nil {
		return notification.Failed(notification.ChannelQueue, fmt.Errorf("publishing to %s: %w", n.queue, err))
	}

	n.logger.Debug("inquiry notification queued", zap.Uint("inquiryId", inquiry.ID), zap.String("queue", n.queue))
	return notification.Delivered(notification.ChannelQueue)
}

// Client owns the broker connection and the channel notifications are
// published on.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Dial connects to the broker and declares queue as durable.
func Dial(url, queue string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", queue, err)
	}

	return &Client{conn: conn, channel: ch}, nil
}

func (c *Client) Channel() *amqp.Channel {
	return c.channel
}

func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("closing RabbitMQ client: %v", errs)
	}
	return nil
}
