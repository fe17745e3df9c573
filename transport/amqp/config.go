// Package amqp binds the relay to a RabbitMQ broker.
//
// Topology: requests go through the default exchange to a work queue,
// replies to an exclusive server-named queue per client, and pushed messages
// through a direct exchange whose routing key is the recipient nickname.
package amqp

const (
	DefaultRPCQueue = "rpc_queue"
	DefaultExchange = "messages"

	contentTypeJSON = "application/json"
	contentTypeText = "text/plain"
)

type Config struct {
	URL      string
	RPCQueue string
	Exchange string
	// PurgeOnStart drops requests left over from a previous run.
	PurgeOnStart bool
}

func (c Config) withDefaults() Config {
	if c.RPCQueue == "" {
		c.RPCQueue = DefaultRPCQueue
	}
	if c.Exchange == "" {
		c.Exchange = DefaultExchange
	}
	return c
}
