package codec

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected domain.Request
		err      error
	}{
		{
			name:     "Full send request",
			payload:  `{"command":"send","nickname":"alice","channelName":"general","message":"hello"}`,
			expected: domain.Request{Command: "send", Nickname: "alice", ChannelName: "general", Message: "hello"},
		},
		{
			name:     "Optional fields omitted",
			payload:  `{"command":"NICK","nickname":""}`,
			expected: domain.Request{Command: "NICK"},
		},
		{
			name:    "Not JSON",
			payload: `NICK alice`,
			err:     errors.ErrProtocolDecode,
		},
		{
			name:    "Wrong field type",
			payload: `{"command":42}`,
			err:     errors.ErrProtocolDecode,
		},
		{
			name:    "Missing command",
			payload: `{"nickname":"alice"}`,
			err:     errors.ErrProtocolDecode,
		},
		{
			name:     "Long fields are not a decode failure",
			payload:  `{"command":"` + strings.Repeat("X", 17) + `","nickname":"` + strings.Repeat("a", 65) + `"}`,
			expected: domain.Request{Command: strings.Repeat("X", 17), Nickname: strings.Repeat("a", 65)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := DecodeRequest([]byte(tt.payload))
			if tt.err != nil {
				req.ErrorIs(err, tt.err)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, got)
		})
	}
}

func TestEncodeResponse_Omits_Empty_Nickname(t *testing.T) {
	req := require.New(t)

	payload, err := EncodeResponse(domain.Response{Status: false, Message: "unknown command"})

	req.NoError(err)
	req.JSONEq(`{"status":false,"message":"unknown command"}`, string(payload))
}

func TestDecodeResponse_Login(t *testing.T) {
	req := require.New(t)

	resp, err := DecodeResponse([]byte(`{"status":true,"message":"ok","nickname":"user42"}`))

	req.NoError(err)
	req.Equal(domain.Response{Status: true, Message: "ok", Nickname: "user42"}, resp)
}
