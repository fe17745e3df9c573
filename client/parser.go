package client

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"strings"
)

// ParseLine maps one line of user input onto a command. Nicknames are left
// empty, the session fills them in.
//
//	NICK [name]      login, an empty name asks for a random one
//	JOIN <channel>
//	LEAVE <channel>
//	LOGOUT
//	EXIT
//	@<channel> <text>  send to one channel
//	anything else      broadcast to every joined channel
func ParseLine(line string) (domain.Command, error) {
	input := strings.TrimSpace(line)
	if input == "" {
		return nil, errors.ErrInvalidInput
	}

	keyword, parameter, _ := strings.Cut(input, " ")
	parameter = strings.TrimSpace(parameter)

	switch domain.Tag(strings.ToUpper(keyword)) {
	case domain.TagNick:
		return domain.Nick{Requested: parameter}, nil
	case domain.TagJoin:
		if parameter == "" {
			return nil, errors.ErrInvalidInput
		}
		return domain.Join{Channel: parameter}, nil
	case domain.TagLeave:
		if parameter == "" {
			return nil, errors.ErrInvalidInput
		}
		return domain.Leave{Channel: parameter}, nil
	case domain.TagLogout:
		return domain.Logout{}, nil
	case domain.TagExit:
		return domain.Exit{}, nil
	}

	if channel, ok := strings.CutPrefix(keyword, "@"); ok {
		if parameter == "" {
			return nil, errors.ErrInvalidInput
		}
		return domain.Send{Channel: channel, Text: parameter}, nil
	}
	return domain.Broadcast{Text: input}, nil
}
