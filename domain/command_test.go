package domain

import (
	"chat-relay/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		request  Request
		expected Command
	}{
		{
			name:     "nick",
			request:  Request{Command: "NICK", Nickname: "alice"},
			expected: Nick{Requested: "alice"},
		},
		{
			name:     "lower case join",
			request:  Request{Command: "join", Nickname: "alice", ChannelName: "general"},
			expected: Join{Nickname: "alice", Channel: "general"},
		},
		{
			name:     "padded leave",
			request:  Request{Command: " Leave ", Nickname: "alice", ChannelName: "general"},
			expected: Leave{Nickname: "alice", Channel: "general"},
		},
		{
			name:     "logout",
			request:  Request{Command: "LOGOUT", Nickname: "alice"},
			expected: Logout{Nickname: "alice"},
		},
		{
			name:     "exit without nickname",
			request:  Request{Command: "EXIT"},
			expected: Exit{},
		},
		{
			name:     "send",
			request:  Request{Command: "SEND", Nickname: "alice", ChannelName: "general", Message: "hello"},
			expected: Send{Nickname: "alice", Channel: "general", Text: "hello"},
		},
		{
			name:     "broadcast ignores the channel",
			request:  Request{Command: "BROADCAST", Nickname: "alice", ChannelName: "general", Message: "hi"},
			expected: Broadcast{Nickname: "alice", Text: "hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			cmd, err := ParseCommand(tt.request)
			req.NoError(err)
			req.Equal(tt.expected, cmd)
		})
	}
}

func TestParseCommand_Unknown(t *testing.T) {
	req := require.New(t)

	cmd, err := ParseCommand(Request{Command: "KICK", Nickname: "alice"})

	req.Nil(cmd)
	req.ErrorIs(err, errors.ErrUnknownCommand)
}

func TestToRequest_Roundtrip(t *testing.T) {
	req := require.New(t)
	commands := []Command{
		Nick{Requested: "alice"},
		Join{Nickname: "alice", Channel: "general"},
		Leave{Nickname: "alice", Channel: "general"},
		Logout{Nickname: "alice"},
		Exit{Nickname: "alice"},
		Send{Nickname: "alice", Channel: "general", Text: "hello"},
		Broadcast{Nickname: "alice", Text: "hi"},
	}

	for _, cmd := range commands {
		parsed, err := ParseCommand(ToRequest(cmd))
		req.NoError(err)
		req.Equal(cmd, parsed)
	}
}

func TestMessage_Display(t *testing.T) {
	req := require.New(t)
	message := Message{Sender: "alice", Text: "hello"}
	req.Equal("@general alice: hello", message.Display("general"))
}

func TestUser_Channels(t *testing.T) {
	req := require.New(t)
	user := NewUser("alice")

	user.AddChannel("general")
	user.AddChannel("random")
	req.True(user.HasJoined("general"))

	user.RemoveChannel("general")
	req.False(user.HasJoined("general"))
	req.Equal([]string{"random"}, user.JoinedChannels)
}
