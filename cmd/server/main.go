package main

import (
	"chat-relay/internal"
	"chat-relay/moderation"
	"chat-relay/rpc"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
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

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the relay and blocks until a signal or a fatal worker error.
// Deferred cleanups always run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharacterReplacement)
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	moderator, err := moderation.NewModerator(config.Words(), charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("unable to build moderator: %w", err)
	}

	// 2. Broker
	transport, err := amqp.DialServer(log, amqp.Config{
		URL:          config.AMQPURL,
		RPCQueue:     config.RPCQueue,
		Exchange:     config.MessageExchange,
		PurgeOnStart: config.PurgeOnStart,
	})
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Info("Closing broker connection...")
		_ = transport.Close()
	}()

	// 3. Relay
	registry := runtime.NewRegistry(config.MaxRandomSuffix)
	distributor := runtime.NewDistributor(log, registry, transport, moderator)
	dispatcher := services.NewDispatcher(log, registry, distributor)
	health := internal.NewHealthServer(log, config.HealthAddr)
	server := rpc.NewServer(log, transport, dispatcher, health)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		server,
		health,
		workers.NewHeartbeatWorker(log, registry, config.HeartbeatInterval),
	)

	log.Info("Relay server started", "rpc_queue", config.RPCQueue, "exchange", config.MessageExchange)
	if err = sup.Run(ctx); err != nil {
		return exitRuntime, err
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}
