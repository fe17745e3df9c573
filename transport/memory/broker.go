// Package memory is an in-process broker with the same semantics as the AMQP
// topology used in production: one work queue for requests, one private reply
// queue per client and a direct exchange routing pushed messages by nickname.
package memory

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

const DefaultQueueCapacity = 256

// Broker holds every queue. Sends never block: a full queue is an error,
// a routing key nobody is bound to drops the message like a direct exchange does.
type Broker struct {
	mu       sync.Mutex
	capacity int
	closed   bool
	requests chan contract.Delivery
	replies  map[string]chan contract.Reply
	bindings map[string]chan []byte
}

func NewBroker(capacity int) *Broker {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Broker{
		capacity: capacity,
		requests: make(chan contract.Delivery, capacity),
		replies:  make(map[string]chan contract.Reply),
		bindings: make(map[string]chan []byte),
	}
}

// Server returns the server side view of the broker.
func (b *Broker) Server() *ServerTransport {
	return &ServerTransport{broker: b}
}

// NewClient declares a private reply queue and returns the client side view bound to it.
func (b *Broker) NewClient() (*ClientTransport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.ErrTransportClosed
	}
	replyTo := "amq.gen-" + uuid.NewString()
	queue := make(chan contract.Reply, b.capacity)
	b.replies[replyTo] = queue
	return &ClientTransport{broker: b, replyTo: replyTo, replies: queue, subscriptions: make(map[string]struct{})}, nil
}

// Close closes every queue. Consumers see their channels closed.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.requests)
	for name, queue := range b.replies {
		close(queue)
		delete(b.replies, name)
	}
	for key, queue := range b.bindings {
		close(queue)
		delete(b.bindings, key)
	}
	return nil
}

func (b *Broker) enqueueRequest(delivery contract.Delivery) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errors.ErrTransportClosed
	}
	select {
	case b.requests <- delivery:
		return nil
	default:
		return fmt.Errorf("request queue is full")
	}
}

func (b *Broker) reply(replyTo string, reply contract.Reply) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errors.ErrTransportClosed
	}
	queue, ok := b.replies[replyTo]
	if !ok {
		// The client is gone, the reply is unroutable
		return nil
	}
	select {
	case queue <- reply:
		return nil
	default:
		return fmt.Errorf("reply queue %s is full", replyTo)
	}
}

func (b *Broker) publish(routingKey string, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errors.ErrTransportClosed
	}
	queue, ok := b.bindings[routingKey]
	if !ok {
		return nil
	}
	select {
	case queue <- body:
		return nil
	default:
		return fmt.Errorf("queue %s is full", routingKey)
	}
}

func (b *Broker) bind(routingKey string) (<-chan []byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.ErrTransportClosed
	}
	if queue, ok := b.bindings[routingKey]; ok {
		return queue, nil
	}
	queue := make(chan []byte, b.capacity)
	b.bindings[routingKey] = queue
	return queue, nil
}

func (b *Broker) unbind(routingKey string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if queue, ok := b.bindings[routingKey]; ok {
		close(queue)
		delete(b.bindings, routingKey)
	}
}

func (b *Broker) deleteReplyQueue(replyTo string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if queue, ok := b.replies[replyTo]; ok {
		close(queue)
		delete(b.replies, replyTo)
	}
}

// ServerTransport implements contract.ServerTransport.
type ServerTransport struct {
	broker *Broker
}

func (s *ServerTransport) Requests(_ context.Context) (<-chan contract.Delivery, error) {
	s.broker.mu.Lock()
	defer s.broker.mu.Unlock()
	if s.broker.closed {
		return nil, errors.ErrTransportClosed
	}
	return s.broker.requests, nil
}

func (s *ServerTransport) Reply(_ context.Context, replyTo, correlationID string, body []byte) error {
	return s.broker.reply(replyTo, contract.Reply{CorrelationID: correlationID, Body: body})
}

func (s *ServerTransport) Publish(_ context.Context, routingKey string, body []byte) error {
	return s.broker.publish(routingKey, body)
}

// Close is a no-op: the broker owns the queues.
func (s *ServerTransport) Close() error {
	return nil
}

// ClientTransport implements contract.ClientTransport.
type ClientTransport struct {
	mu            sync.Mutex
	broker        *Broker
	replyTo       string
	replies       chan contract.Reply
	subscriptions map[string]struct{}
}

func (c *ClientTransport) Send(_ context.Context, correlationID string, body []byte) error {
	return c.broker.enqueueRequest(contract.Delivery{
		CorrelationID: correlationID,
		ReplyTo:       c.replyTo,
		Body:          body,
		Ack:           func() error { return nil },
	})
}

func (c *ClientTransport) Replies() <-chan contract.Reply {
	return c.replies
}

func (c *ClientTransport) Subscribe(_ context.Context, routingKey string) (<-chan []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	queue, err := c.broker.bind(routingKey)
	if err != nil {
		return nil, err
	}
	c.subscriptions[routingKey] = struct{}{}
	return queue, nil
}

// Unsubscribe unbinds and deletes the queue; its channel is closed.
func (c *ClientTransport) Unsubscribe(routingKey string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subscriptions[routingKey]; !ok {
		return nil
	}
	delete(c.subscriptions, routingKey)
	c.broker.unbind(routingKey)
	return nil
}

func (c *ClientTransport) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for routingKey := range c.subscriptions {
		c.broker.unbind(routingKey)
		delete(c.subscriptions, routingKey)
	}
	c.broker.deleteReplyQueue(c.replyTo)
	return nil
}
