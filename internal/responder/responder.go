// Package responder answers translation requests over NATS request/reply.
package responder

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/Checker-Finance/normify/internal/metrics"
)

// Conn is the subset of *nats.Conn the responder uses.
type Conn interface {
	QueueSubscribe(subject, queue string, cb nats.MsgHandler) (*nats.Subscription, error)
	Publish(subject string, data []byte) error
}

// Translator handles a JSON-encoded translate.Request and returns the encoded
// translate.Response.
type Translator interface {
	HandleJSON(ctx context.Context, body []byte) []byte
}

// Responder consumes translation requests from a NATS queue group and replies
// on each message's reply subject.
type Responder struct {
	ctx     context.Context
	logger  *zap.Logger
	nc      Conn
	service Translator
	subject string
	queue   string
	timeout time.Duration

	sub *nats.Subscription
}

// New constructs a Responder. Messages are handled with a per-message deadline;
// canceling ctx does not cancel them, so requests delivered while the
// connection drains are still answered.
func New(ctx context.Context, logger *zap.Logger, nc Conn, service Translator, subject, queue string) *Responder {
	return &Responder{
		ctx:     ctx,
		logger:  logger,
		nc:      nc,
		service: service,
		subject: subject,
		queue:   queue,
		timeout: 2 * time.Second,
	}
}

// Start subscribes to the request subject.
func (r *Responder) Start() error {
	sub, err := r.nc.QueueSubscribe(r.subject, r.queue, r.handleMessage)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", r.subject, err)
	}
	r.sub = sub
	r.logger.Info("subscribed to NATS subject",
		zap.String("subject", r.subject),
		zap.String("queue", r.queue))
	return nil
}

// Stop removes the subscription. Pending messages are dropped; drain the
// connection for a graceful stop.
func (r *Responder) Stop() error {
	if r.sub == nil {
		return nil
	}
	return r.sub.Unsubscribe()
}

func (r *Responder) handleMessage(msg *nats.Msg) {
	start := time.Now()

	if msg.Reply == "" {
		r.logger.Warn("normify.nats.request.no_reply_subject",
			zap.String("subject", msg.Subject))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.ctx), r.timeout)
	defer cancel()

	reply := r.service.HandleJSON(ctx, msg.Data)
	if err := r.nc.Publish(msg.Reply, reply); err != nil {
		metrics.IncReplyError("nats")
		r.logger.Error("normify.nats.reply.failed",
			zap.String("reply", msg.Reply),
			zap.Error(err))
		return
	}

	r.logger.Debug("message handled",
		zap.String("subject", msg.Subject),
		zap.Duration("latency", time.Since(start)))
}
