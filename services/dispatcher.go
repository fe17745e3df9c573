package services

import (
	"chat-relay/codec"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

// fallbackResponse is sent if a response cannot be encoded at all.
var fallbackResponse = []byte(`{"status":false,"message":"could not process message"}`)

// Dispatcher executes client commands against the registry and the distributor.
// Every outcome, failures included, becomes a Response; nothing here stops the server loop.
type Dispatcher struct {
	log         *slog.Logger
	registry    contract.IRegistry
	distributor contract.IDistributor
}

func NewDispatcher(log *slog.Logger, registry contract.IRegistry, distributor contract.IDistributor) *Dispatcher {
	return &Dispatcher{log: log, registry: registry, distributor: distributor}
}

// Process decodes a request payload, handles it and encodes the response.
func (d *Dispatcher) Process(ctx context.Context, payload []byte) []byte {
	resp := d.process(ctx, payload)
	out, err := codec.EncodeResponse(resp)
	if err != nil {
		d.log.Error("Unable to encode response", "error", err)
		return fallbackResponse
	}
	return out
}

func (d *Dispatcher) process(ctx context.Context, payload []byte) domain.Response {
	req, err := codec.DecodeRequest(payload)
	if err != nil {
		d.log.Warn("Rejecting malformed request", "error", err)
		return domain.Failure(errors.ErrProtocolDecode)
	}
	cmd, err := domain.ParseCommand(req)
	if err != nil {
		d.log.Warn("Rejecting request", "command", req.Command, "nickname", req.Nickname)
		return domain.Failure(errors.ErrUnknownCommand)
	}
	return d.Handle(ctx, cmd)
}

// Handle runs one command.
func (d *Dispatcher) Handle(ctx context.Context, cmd domain.Command) domain.Response {
	switch c := cmd.(type) {
	case domain.Nick:
		return d.login(c)
	case domain.Join:
		return d.join(c)
	case domain.Leave:
		return d.leave(c)
	case domain.Logout:
		return d.logout(c)
	case domain.Exit:
		return d.exit(c)
	case domain.Send:
		return d.send(ctx, c)
	case domain.Broadcast:
		return d.broadcast(ctx, c)
	default:
		return domain.Failure(errors.ErrUnknownCommand)
	}
}

func (d *Dispatcher) login(c domain.Nick) domain.Response {
	result := d.registry.Login(c.Requested)
	d.log.Info("User logged in", "requested", c.Requested, "nickname", result.Nickname)

	var lines []string
	if result.Taken {
		lines = append(lines, fmt.Sprintf("nickname %s already exists", c.Requested))
	}
	if result.Generated {
		lines = append(lines, "random nickname generated")
	}
	lines = append(lines, "successfully logged in as "+result.Nickname)

	resp := domain.Success(strings.Join(lines, "\n"))
	resp.Nickname = result.Nickname
	return resp
}

func (d *Dispatcher) join(c domain.Join) domain.Response {
	if !d.registry.IsRegistered(c.Nickname) {
		return domain.Failure(errors.ErrNotLoggedIn)
	}
	if c.Channel == "" {
		return domain.Failure(errors.ErrEmptyChannelName)
	}
	created, err := d.registry.Join(c.Nickname, c.Channel)
	if err != nil {
		d.log.Debug("Join refused", "nickname", c.Nickname, "channel", c.Channel, "error", err)
		return domain.Failure(err)
	}
	d.log.Info("User joined channel", "nickname", c.Nickname, "channel", c.Channel, "created", created)

	message := fmt.Sprintf("#%s joined successfully", c.Channel)
	if created {
		message = fmt.Sprintf("created new channel #%s\n%s", c.Channel, message)
	}
	return domain.Success(message)
}

func (d *Dispatcher) leave(c domain.Leave) domain.Response {
	if !d.registry.IsRegistered(c.Nickname) {
		return domain.Failure(errors.ErrNotLoggedIn)
	}
	if c.Channel == "" {
		return domain.Failure(errors.ErrEmptyChannelName)
	}
	if err := d.registry.Leave(c.Nickname, c.Channel); err != nil {
		d.log.Debug("Leave refused", "nickname", c.Nickname, "channel", c.Channel, "error", err)
		return domain.Failure(fmt.Errorf("failed to leave, %w", err))
	}
	d.log.Info("User left channel", "nickname", c.Nickname, "channel", c.Channel)
	return domain.Success(fmt.Sprintf("you are no longer a member of #%s", c.Channel))
}

func (d *Dispatcher) logout(c domain.Logout) domain.Response {
	if !d.registry.IsRegistered(c.Nickname) {
		return domain.Failure(errors.ErrNotLoggedIn)
	}
	left := d.registry.Logout(c.Nickname)
	d.log.Info("User logged out", "nickname", c.Nickname, "channels_left", len(left))
	return domain.Success(fmt.Sprintf("%s has been logged out", c.Nickname))
}

func (d *Dispatcher) exit(c domain.Exit) domain.Response {
	if !d.registry.IsRegistered(c.Nickname) {
		return domain.Success("bye")
	}
	return d.logout(domain.Logout{Nickname: c.Nickname})
}

func (d *Dispatcher) send(ctx context.Context, c domain.Send) domain.Response {
	if !d.registry.IsRegistered(c.Nickname) {
		return domain.Failure(errors.ErrNotLoggedIn)
	}
	if c.Channel == "" {
		return domain.Failure(errors.ErrEmptyChannelName)
	}
	if c.Text == "" {
		return domain.Failure(errors.ErrEmptyMessage)
	}
	channels, err := d.registry.JoinedChannels(c.Nickname)
	if err != nil {
		return domain.Failure(err)
	}
	if !lo.Contains(channels, c.Channel) {
		d.log.Debug("Send refused, not a member", "nickname", c.Nickname, "channel", c.Channel)
		return domain.Failure(fmt.Errorf("%w #%s", errors.ErrNotMember, c.Channel))
	}

	message := domain.Message{Sender: c.Nickname, Text: c.Text}
	if err = d.distributor.DistributeToChannel(ctx, message, c.Channel); err != nil {
		return domain.Failure(errors.ErrDistribution)
	}
	return domain.Success("")
}

func (d *Dispatcher) broadcast(ctx context.Context, c domain.Broadcast) domain.Response {
	if !d.registry.IsRegistered(c.Nickname) {
		return domain.Failure(errors.ErrNotLoggedIn)
	}
	if c.Text == "" {
		return domain.Failure(errors.ErrEmptyMessage)
	}
	channels, err := d.registry.JoinedChannels(c.Nickname)
	if err != nil {
		return domain.Failure(err)
	}
	if len(channels) == 0 {
		return domain.Failure(fmt.Errorf("failed to send the message, %w", errors.ErrNoChannelJoined))
	}

	message := domain.Message{Sender: c.Nickname, Text: c.Text}
	if err = d.distributor.DistributeToChannels(ctx, message, channels); err != nil {
		return domain.Failure(errors.ErrDistribution)
	}
	return domain.Success("")
}
