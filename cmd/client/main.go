package main

import (
	"chat-relay/client"
	"chat-relay/rpc"
	"chat-relay/transport/amqp"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run reads commands from stdin until EXIT, end of input or a broker failure.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Connect to the broker.
	transport, err := amqp.DialClient(log, amqp.Config{
		URL:      config.AMQPURL,
		RPCQueue: config.RPCQueue,
		Exchange: config.MessageExchange,
	})
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing connection...")
		_ = transport.Close()
	}()

	// 4. Read commands.
	renderer := client.NewRenderer(os.Stdout, config.Colours)
	session := client.NewSession(log, rpc.NewClient(log, transport, config.CallTimeout), transport, renderer)
	if err = session.Run(ctx, os.Stdin); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
