package amqp

import (
	"chat-relay/contract"
	"context"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Server implements contract.ServerTransport.
type Server struct {
	log  *slog.Logger
	cfg  Config
	conn *amqp.Connection
	ch   *amqp.Channel

	mu       sync.Mutex
	requests chan contract.Delivery
}

// DialServer connects, declares the topology and limits unacked requests to one.
func DialServer(log *slog.Logger, cfg Config) (*Server, error) {
	cfg = cfg.withDefaults()
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("unable to open channel: %w", err)
	}

	s := &Server{log: log, cfg: cfg, conn: conn, ch: ch}
	if err = s.declare(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Server) declare() error {
	if _, err := s.ch.QueueDeclare(s.cfg.RPCQueue, false, false, false, false, nil); err != nil {
		return fmt.Errorf("unable to declare %s: %w", s.cfg.RPCQueue, err)
	}
	if s.cfg.PurgeOnStart {
		purged, err := s.ch.QueuePurge(s.cfg.RPCQueue, false)
		if err != nil {
			return fmt.Errorf("unable to purge %s: %w", s.cfg.RPCQueue, err)
		}
		s.log.Info("Purged stale requests", "queue", s.cfg.RPCQueue, "count", purged)
	}
	if err := s.ch.ExchangeDeclare(s.cfg.Exchange, amqp.ExchangeDirect, false, false, false, false, nil); err != nil {
		return fmt.Errorf("unable to declare exchange %s: %w", s.cfg.Exchange, err)
	}
	if err := s.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("unable to set prefetch: %w", err)
	}
	return nil
}

// Requests starts consuming once; later calls return the same stream so a
// restarted loop does not leave an orphan consumer holding a request.
func (s *Server) Requests(ctx context.Context) (<-chan contract.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.requests != nil {
		return s.requests, nil
	}

	msgs, err := s.ch.Consume(s.cfg.RPCQueue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to consume %s: %w", s.cfg.RPCQueue, err)
	}
	out := make(chan contract.Delivery)
	go func() {
		defer close(out)
		for msg := range msgs {
			select {
			case <-ctx.Done():
				return
			case out <- toDelivery(msg):
			}
		}
	}()
	s.requests = out
	return out, nil
}

func (s *Server) Reply(ctx context.Context, replyTo, correlationID string, body []byte) error {
	return s.ch.PublishWithContext(ctx, "", replyTo, false, false, amqp.Publishing{
		ContentType:   contentTypeJSON,
		CorrelationId: correlationID,
		Body:          body,
	})
}

func (s *Server) Publish(ctx context.Context, routingKey string, body []byte) error {
	return s.ch.PublishWithContext(ctx, s.cfg.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType: contentTypeText,
		Body:        body,
	})
}

func (s *Server) Close() error {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	return s.conn.Close()
}

func toDelivery(msg amqp.Delivery) contract.Delivery {
	return contract.Delivery{
		CorrelationID: msg.CorrelationId,
		ReplyTo:       msg.ReplyTo,
		Body:          msg.Body,
		Ack:           func() error { return msg.Ack(false) },
	}
}
