//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context) error
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IRegistry owns users, channels and the memberships between them.
type IRegistry interface {
	Login(requested string) domain.LoginResult
	Logout(nickname string) []string
	IsRegistered(nickname string) bool
	Join(nickname, channel string) (bool, error)
	Leave(nickname, channel string) error
	JoinedChannels(nickname string) ([]string, error)
	Members(channel string) []string
	Stats() domain.RegistryStats
}

// Publisher is the fan-out primitive: a payload reaches subscribers bound to routingKey.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

type IDistributor interface {
	DistributeToChannel(ctx context.Context, message domain.Message, channel string) error
	DistributeToChannels(ctx context.Context, message domain.Message, channels []string) error
}

// CommandHandler turns an encoded request into an encoded response.
type CommandHandler interface {
	Process(ctx context.Context, payload []byte) []byte
}

// Delivery is one request taken from the command queue.
// Ack must be called once the reply has been sent.
type Delivery struct {
	CorrelationID string
	ReplyTo       string
	Body          []byte
	Ack           func() error
}

type Reply struct {
	CorrelationID string
	Body          []byte
}

// ServerTransport is the broker as seen by the server.
type ServerTransport interface {
	Publisher
	Requests(ctx context.Context) (<-chan Delivery, error)
	Reply(ctx context.Context, replyTo, correlationID string, body []byte) error
	Close() error
}

// ClientTransport is the broker as seen by a client.
type ClientTransport interface {
	Send(ctx context.Context, correlationID string, body []byte) error
	Replies() <-chan Reply
	Subscribe(ctx context.Context, routingKey string) (<-chan []byte, error)
	Unsubscribe(routingKey string) error
	Close() error
}

// HealthReporter is told whether the request loop is consuming.
type HealthReporter interface {
	Serving()
	NotServing()
}
