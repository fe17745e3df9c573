// Package codec converts requests and responses to and from their JSON wire form.
package codec

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeRequest parses and validates an inbound request.
// Any failure is reported as errors.ErrProtocolDecode.
func DecodeRequest(payload []byte) (domain.Request, error) {
	var req domain.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return domain.Request{}, fmt.Errorf("%w: %v", errors.ErrProtocolDecode, err)
	}
	if err := validate.Struct(req); err != nil {
		return domain.Request{}, fmt.Errorf("%w: %v", errors.ErrProtocolDecode, err)
	}
	return req, nil
}

func EncodeRequest(req domain.Request) ([]byte, error) {
	return json.Marshal(req)
}

func DecodeResponse(payload []byte) (domain.Response, error) {
	var resp domain.Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return domain.Response{}, fmt.Errorf("%w: %v", errors.ErrProtocolDecode, err)
	}
	return resp, nil
}

func EncodeResponse(resp domain.Response) ([]byte, error) {
	return json.Marshal(resp)
}
