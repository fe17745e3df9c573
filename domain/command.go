package domain

import (
	"chat-relay/errors"
	"fmt"
	"strings"
)

type Tag string

const (
	TagNick      Tag = "NICK"
	TagJoin      Tag = "JOIN"
	TagLeave     Tag = "LEAVE"
	TagLogout    Tag = "LOGOUT"
	TagExit      Tag = "EXIT"
	TagSend      Tag = "SEND"
	TagBroadcast Tag = "BROADCAST"
)

// Command is the closed set of operations a client can request.
// Only types of this package implement it.
type Command interface {
	Tag() Tag
	command()
}

type Nick struct{ Requested string }

type Join struct{ Nickname, Channel string }

type Leave struct{ Nickname, Channel string }

type Logout struct{ Nickname string }

type Exit struct{ Nickname string }

type Send struct{ Nickname, Channel, Text string }

type Broadcast struct{ Nickname, Text string }

func (Nick) Tag() Tag      { return TagNick }
func (Join) Tag() Tag      { return TagJoin }
func (Leave) Tag() Tag     { return TagLeave }
func (Logout) Tag() Tag    { return TagLogout }
func (Exit) Tag() Tag      { return TagExit }
func (Send) Tag() Tag      { return TagSend }
func (Broadcast) Tag() Tag { return TagBroadcast }

func (Nick) command()      {}
func (Join) command()      {}
func (Leave) command()     {}
func (Logout) command()    {}
func (Exit) command()      {}
func (Send) command()      {}
func (Broadcast) command() {}

// ParseCommand maps a decoded request onto its command variant.
// The tag is matched case-insensitively.
func ParseCommand(req Request) (Command, error) {
	switch Tag(strings.ToUpper(strings.TrimSpace(req.Command))) {
	case TagNick:
		return Nick{Requested: req.Nickname}, nil
	case TagJoin:
		return Join{Nickname: req.Nickname, Channel: req.ChannelName}, nil
	case TagLeave:
		return Leave{Nickname: req.Nickname, Channel: req.ChannelName}, nil
	case TagLogout:
		return Logout{Nickname: req.Nickname}, nil
	case TagExit:
		return Exit{Nickname: req.Nickname}, nil
	case TagSend:
		return Send{Nickname: req.Nickname, Channel: req.ChannelName, Text: req.Message}, nil
	case TagBroadcast:
		return Broadcast{Nickname: req.Nickname, Text: req.Message}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCommand, req.Command)
	}
}

// ToRequest is the inverse of ParseCommand, used by the client side.
func ToRequest(cmd Command) Request {
	req := Request{Command: string(cmd.Tag())}
	switch c := cmd.(type) {
	case Nick:
		req.Nickname = c.Requested
	case Join:
		req.Nickname, req.ChannelName = c.Nickname, c.Channel
	case Leave:
		req.Nickname, req.ChannelName = c.Nickname, c.Channel
	case Logout:
		req.Nickname = c.Nickname
	case Exit:
		req.Nickname = c.Nickname
	case Send:
		req.Nickname, req.ChannelName, req.Message = c.Nickname, c.Channel, c.Text
	case Broadcast:
		req.Nickname, req.Message = c.Nickname, c.Text
	}
	return req
}

// Request is the wire shape of a command.
type Request struct {
	Command     string `json:"command" validate:"required"`
	Nickname    string `json:"nickname"`
	ChannelName string `json:"channelName,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Response is the wire shape of a reply. Nickname is only set on login.
type Response struct {
	Status   bool   `json:"status"`
	Message  string `json:"message"`
	Nickname string `json:"nickname,omitempty"`
}

func Success(message string) Response {
	return Response{Status: true, Message: message}
}

func Failure(err error) Response {
	return Response{Status: false, Message: err.Error()}
}
