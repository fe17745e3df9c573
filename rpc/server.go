package rpc

import (
	"chat-relay/codec"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
)

// Server consumes the command queue one request at a time.
// A request is acknowledged only once its reply has been sent.
type Server struct {
	log       *slog.Logger
	transport contract.ServerTransport
	handler   contract.CommandHandler
	health    contract.HealthReporter
}

func NewServer(log *slog.Logger, transport contract.ServerTransport,
	handler contract.CommandHandler, health contract.HealthReporter) *Server {
	return &Server{log: log, transport: transport, handler: handler, health: health}
}

// Run returns nil when ctx is canceled and an error when the transport is lost.
func (s *Server) Run(ctx context.Context) error {
	deliveries, err := s.transport.Requests(ctx)
	if err != nil {
		return fmt.Errorf("unable to consume requests: %w", err)
	}
	s.setServing(true)
	defer s.setServing(false)
	s.log.Info("Awaiting RPC requests")

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.ErrTransportClosed
			}
			if err = s.serve(ctx, delivery); err != nil {
				return err
			}
		}
	}
}

func (s *Server) serve(ctx context.Context, delivery contract.Delivery) error {
	body := s.process(ctx, delivery)

	if delivery.ReplyTo == "" {
		s.log.Warn("Request without reply address, dropping response",
			"correlation_id", delivery.CorrelationID)
	} else if err := s.transport.Reply(ctx, delivery.ReplyTo, delivery.CorrelationID, body); err != nil {
		return fmt.Errorf("unable to reply to %s: %w", delivery.ReplyTo, err)
	}

	if delivery.Ack == nil {
		return nil
	}
	if err := delivery.Ack(); err != nil {
		return fmt.Errorf("unable to ack request %s: %w", delivery.CorrelationID, err)
	}
	return nil
}

// process turns a handler panic into a failure reply so the request is
// still answered and acked and the next one can be delivered.
func (s *Server) process(ctx context.Context, delivery contract.Delivery) (body []byte) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Handler panicked, replying with a failure",
				"correlation_id", delivery.CorrelationID, "panic", r)
			body, _ = codec.EncodeResponse(domain.Failure(errors.ErrInternal))
		}
	}()
	return s.handler.Process(ctx, delivery.Body)
}

func (s *Server) setServing(serving bool) {
	if s.health == nil {
		return
	}
	if serving {
		s.health.Serving()
	} else {
		s.health.NotServing()
	}
}
