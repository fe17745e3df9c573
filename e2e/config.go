package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config points the suite at a running relay server and its broker.
type Config struct {
	AMQPURL    string `envconfig:"AMQP_URL"`
	HealthAddr string `envconfig:"HEALTH_ADDR" default:"localhost:8081"`
	RPCQueue   string `envconfig:"RPC_QUEUE" default:"rpc_queue"`
	Exchange   string `envconfig:"MESSAGE_EXCHANGE" default:"messages"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
