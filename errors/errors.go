package errors

import "fmt"

// Request handling. The text of each error is what the client displays.
var (
	ErrProtocolDecode   = fmt.Errorf("could not process message")
	ErrUnknownCommand   = fmt.Errorf("unknown command")
	ErrNotLoggedIn      = fmt.Errorf("please login first")
	ErrAlreadyMember    = fmt.Errorf("you are already a member of")
	ErrNotMember        = fmt.Errorf("you are not a member of")
	ErrEmptyChannelName = fmt.Errorf("channel name is required")
	ErrEmptyMessage     = fmt.Errorf("message is empty")
	ErrNoChannelJoined  = fmt.Errorf("you haven't joined any channel yet")
	ErrDistribution     = fmt.Errorf("server encountered an error on publishing the message")
	ErrInternal         = fmt.Errorf("server encountered an error on processing the request")
)

// Client side.
var (
	ErrCallTimeout     = fmt.Errorf("no reply received before timeout")
	ErrAlreadyLoggedIn = fmt.Errorf("please logout first")
	ErrInvalidInput    = fmt.Errorf("invalid command")
)

// Runtime and transport.
var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrTransportClosed = fmt.Errorf("transport closed")
)
