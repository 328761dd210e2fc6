package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ticket-monarch/internal/pkg/config"
	"ticket-monarch/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, event FunnelEvent) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, FunnelEvent) error { return nil }
func (NoopPublisher) Close() error                               { return nil }

// session is one open connection plus channel.
type session interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type dialFunc func() (session, error)

// AMQPPublisher publishes persistent JSON messages to a durable queue on the
// default exchange. A session closed by the broker is reopened on the next
// publish; failed reopen attempts are spaced by exponential backoff.
type AMQPPublisher struct {
	mu         sync.Mutex
	sess       session
	dial       dialFunc
	retry      backoff.BackOff
	retryAfter time.Time
	now        func() time.Time
	queue      string
	logger     *slog.Logger
}

func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) (Publisher, error) {
	if cfg.AMQPURL == "" {
		logger.Info("funnel events disabled")
		return NoopPublisher{}, nil
	}
	pub, err := DialAMQP(cfg.AMQPURL, cfg.Queue, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("funnel events enabled", "queue", cfg.Queue)
	return pub, nil
}

func DialAMQP(url, queue string, logger *slog.Logger) (*AMQPPublisher, error) {
	dial := func() (session, error) {
		sess, err := openSession(url, queue)
		if err != nil {
			return nil, err
		}
		return sess, nil
	}
	return newAMQPPublisher(dial, queue, logger)
}

func newAMQPPublisher(dial dialFunc, queue string, logger *slog.Logger) (*AMQPPublisher, error) {
	sess, err := dial()
	if err != nil {
		return nil, err
	}

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = time.Second
	retry.MaxInterval = time.Minute
	retry.MaxElapsedTime = 0

	return &AMQPPublisher{
		sess:   sess,
		dial:   dial,
		retry:  retry,
		now:    time.Now,
		queue:  queue,
		logger: logger,
	}, nil
}

type amqpSession struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func openSession(url, queue string) (*amqpSession, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq channel open")
	}

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq queue declare")
	}

	return &amqpSession{conn: conn, ch: ch}, nil
}

func (s *amqpSession) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return s.ch.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

func (s *amqpSession) IsClosed() bool {
	return s.conn.IsClosed() || s.ch.IsClosed()
}

func (s *amqpSession) Close() error {
	if err := s.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		_ = s.conn.Close()
		return err
	}
	if err := s.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return err
	}
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event FunnelEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal funnel event")
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(event.Type),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSessionLocked(); err != nil {
		return err
	}
	if err := p.sess.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		p.logger.Warn("rabbitmq publish failed", slog.String("type", string(event.Type)), slog.String("error", err.Error()))
		return errs.Wrap(err, "rabbitmq publish")
	}
	return nil
}

// ensureSessionLocked reopens a session the broker has closed. Callers hold p.mu.
func (p *AMQPPublisher) ensureSessionLocked() error {
	if p.sess != nil && !p.sess.IsClosed() {
		return nil
	}
	if p.sess != nil {
		_ = p.sess.Close()
		p.sess = nil
	}

	now := p.now()
	if now.Before(p.retryAfter) {
		return errs.New("rabbitmq reconnect pending")
	}

	sess, err := p.dial()
	if err != nil {
		p.retryAfter = now.Add(p.retry.NextBackOff())
		p.logger.Warn("rabbitmq reconnect failed", slog.String("error", err.Error()), slog.Time("retry_after", p.retryAfter))
		return errs.Wrap(err, "rabbitmq reconnect")
	}

	p.retry.Reset()
	p.retryAfter = time.Time{}
	p.sess = sess
	p.logger.Info("rabbitmq session reopened", slog.String("queue", p.queue))
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sess == nil {
		return nil
	}
	err := p.sess.Close()
	p.sess = nil
	return err
}
