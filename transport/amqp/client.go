package amqp

import (
	"chat-relay/contract"
	"context"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client implements contract.ClientTransport.
// Requests and pushed messages use separate channels.
type Client struct {
	log       *slog.Logger
	cfg       Config
	conn      *amqp.Connection
	rpc       *amqp.Channel
	messages  *amqp.Channel
	replyTo   string
	replies   chan contract.Reply
	closeOnce sync.Once
}

func DialClient(log *slog.Logger, cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to broker: %w", err)
	}
	c := &Client{log: log, cfg: cfg, conn: conn, replies: make(chan contract.Reply)}
	if err = c.open(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) open() error {
	var err error
	if c.rpc, err = c.conn.Channel(); err != nil {
		return fmt.Errorf("unable to open rpc channel: %w", err)
	}
	queue, err := c.rpc.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("unable to declare reply queue: %w", err)
	}
	c.replyTo = queue.Name
	msgs, err := c.rpc.Consume(c.replyTo, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("unable to consume reply queue: %w", err)
	}
	go func() {
		defer close(c.replies)
		for msg := range msgs {
			c.replies <- contract.Reply{CorrelationID: msg.CorrelationId, Body: msg.Body}
		}
	}()

	if c.messages, err = c.conn.Channel(); err != nil {
		return fmt.Errorf("unable to open message channel: %w", err)
	}
	if err = c.messages.ExchangeDeclare(c.cfg.Exchange, amqp.ExchangeDirect, false, false, false, false, nil); err != nil {
		return fmt.Errorf("unable to declare exchange %s: %w", c.cfg.Exchange, err)
	}
	return nil
}

func (c *Client) Send(ctx context.Context, correlationID string, body []byte) error {
	return c.rpc.PublishWithContext(ctx, "", c.cfg.RPCQueue, false, false, amqp.Publishing{
		ContentType:   contentTypeJSON,
		CorrelationId: correlationID,
		ReplyTo:       c.replyTo,
		Body:          body,
	})
}

func (c *Client) Replies() <-chan contract.Reply {
	return c.replies
}

// Subscribe declares a queue named after the routing key and binds it to the exchange.
// The queue is deleted when its last consumer goes away.
func (c *Client) Subscribe(_ context.Context, routingKey string) (<-chan []byte, error) {
	if _, err := c.messages.QueueDeclare(routingKey, false, true, false, false, nil); err != nil {
		return nil, fmt.Errorf("unable to declare queue %s: %w", routingKey, err)
	}
	if err := c.messages.QueueBind(routingKey, routingKey, c.cfg.Exchange, false, nil); err != nil {
		return nil, fmt.Errorf("unable to bind queue %s: %w", routingKey, err)
	}
	msgs, err := c.messages.Consume(routingKey, "", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to consume queue %s: %w", routingKey, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for msg := range msgs {
			out <- msg.Body
		}
	}()
	return out, nil
}

// Unsubscribe unbinds and deletes the queue, which ends its consumer.
func (c *Client) Unsubscribe(routingKey string) error {
	if err := c.messages.QueueUnbind(routingKey, routingKey, c.cfg.Exchange, nil); err != nil {
		return fmt.Errorf("unable to unbind queue %s: %w", routingKey, err)
	}
	if _, err := c.messages.QueueDelete(routingKey, false, false, false); err != nil {
		return fmt.Errorf("unable to delete queue %s: %w", routingKey, err)
	}
	return nil
}

func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		if c.messages != nil {
			_ = c.messages.Close()
		}
		if c.rpc != nil {
			_ = c.rpc.Close()
		}
		err = c.conn.Close()
	})
	return err
}
