package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/Checker-Finance/normify/internal/metrics"
)

// Channel is the subset of *amqp.Channel the consumer uses.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Translator handles a JSON-encoded translate.Request and returns the encoded
// translate.Response.
type Translator interface {
	HandleJSON(ctx context.Context, body []byte) []byte
}

// Consumer serves translation requests from a RabbitMQ queue using the
// ReplyTo/CorrelationId RPC convention.
type Consumer struct {
	conn      *amqp.Connection
	channel   Channel
	service   Translator
	queue     string
	logger    *zap.Logger
	timeout   time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

// NewConsumer creates a new RabbitMQ consumer
func NewConsumer(url, queue string, service Translator, logger *zap.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	c := newConsumer(channel, queue, service, logger)
	c.conn = conn
	return c, nil
}

func newConsumer(channel Channel, queue string, service Translator, logger *zap.Logger) *Consumer {
	return &Consumer{
		channel: channel,
		service: service,
		queue:   queue,
		logger:  logger,
		timeout: 2 * time.Second,
		done:    make(chan struct{}),
	}
}

// Start declares the request queue and begins consuming in the background.
func (c *Consumer) Start(ctx context.Context) error {
	if _, err := c.channel.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", c.queue, err)
	}

	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume from %s: %w", c.queue, err)
	}

	c.logger.Info("Started consuming from RabbitMQ", zap.String("queue", c.queue))

	go c.consume(ctx, msgs)
	return nil
}

// Healthy reports whether the underlying connection is open.
func (c *Consumer) Healthy() error {
	if c.conn == nil || c.conn.IsClosed() {
		return fmt.Errorf("connection closed")
	}
	return nil
}

func (c *Consumer) consume(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-c.done:
			return
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				c.logger.Warn("Translation request channel closed")
				return
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg amqp.Delivery) {
	if msg.ReplyTo == "" {
		c.logger.Warn("normify.amqp.request.no_reply_to",
			zap.String("correlation_id", msg.CorrelationId))
		_ = msg.Ack(false)
		return
	}

	// A delivery already taken off the queue is answered even during shutdown.
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	reply := c.service.HandleJSON(reqCtx, msg.Body)
	err := c.channel.PublishWithContext(reqCtx, "", msg.ReplyTo, false, false, amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: msg.CorrelationId,
		Timestamp:     time.Now().UTC(),
		Body:          reply,
	})
	if err != nil {
		metrics.IncReplyError("amqp")
		c.logger.Error("normify.amqp.reply.failed",
			zap.String("reply_to", msg.ReplyTo),
			zap.String("correlation_id", msg.CorrelationId),
			zap.Error(err))
		_ = msg.Nack(false, true) // Requeue on failure
		return
	}

	_ = msg.Ack(false)
}

// Close closes the consumer
// It is safe to call more than once.
func (c *Consumer) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)

		if c.channel != nil {
			_ = c.channel.Close()
		}
		if c.conn != nil {
			err = c.conn.Close()
		}
	})
	return err
}
