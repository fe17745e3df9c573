package rpc

import (
	"chat-relay/codec"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultCallTimeout = 5 * time.Second

// Client issues requests on the command queue and waits for the matching reply.
// Calls are serialized: a client has at most one request in flight.
type Client struct {
	mu        sync.Mutex
	log       *slog.Logger
	transport contract.ClientTransport
	timeout   time.Duration
}

func NewClient(log *slog.Logger, transport contract.ClientTransport, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Client{log: log, transport: transport, timeout: timeout}
}

// Call sends the request and blocks until its reply arrives or the timeout expires.
// Replies carrying another correlation id are stale and discarded.
func (c *Client) Call(ctx context.Context, request domain.Request) (domain.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload, err := codec.EncodeRequest(request)
	if err != nil {
		return domain.Response{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	correlationID := uuid.NewString()
	if err = c.transport.Send(callCtx, correlationID, payload); err != nil {
		return domain.Response{}, fmt.Errorf("unable to send %s: %w", request.Command, err)
	}

	replies := c.transport.Replies()
	for {
		select {
		case <-callCtx.Done():
			if ctx.Err() != nil {
				return domain.Response{}, ctx.Err()
			}
			return domain.Response{}, fmt.Errorf("%w: %s after %s", errors.ErrCallTimeout, request.Command, c.timeout)
		case reply, ok := <-replies:
			if !ok {
				return domain.Response{}, errors.ErrTransportClosed
			}
			if reply.CorrelationID != correlationID {
				c.log.Debug("Discarding stale reply", "correlation_id", reply.CorrelationID)
				continue
			}
			return codec.DecodeResponse(reply.Body)
		}
	}
}
