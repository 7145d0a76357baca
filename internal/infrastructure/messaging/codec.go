// Package messaging carries typed messages between the background coordinator
// and page agents as tagged JSON objects.
package messaging

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/dimmer/internal/domain/entity"
)

// ErrMalformedMessage is returned for payloads that are not a tagged JSON object.
var ErrMalformedMessage = errors.New("malformed message")

// UnknownMessageError is returned for a well-formed message with an unknown tag.
type UnknownMessageError struct {
	Kind entity.MessageKind
}

func (e *UnknownMessageError) Error() string {
	return fmt.Sprintf("Unknown action: %s", e.Kind)
}

const (
	tagAction = "action"
	tagType   = "type"
)

// tagFor returns the discriminator field used on the wire for kind.
// Page lifecycle notifications use "type"; requests use "action".
func tagFor(kind entity.MessageKind) string {
	if kind == entity.KindContentScriptLoaded {
		return tagType
	}
	return tagAction
}

// Encode serializes msg with its discriminator field.
func Encode(msg entity.Message) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil message", ErrMalformedMessage)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", msg.Kind(), err)
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", msg.Kind(), err)
	}

	tag, err := json.Marshal(msg.Kind())
	if err != nil {
		return nil, err
	}
	fields[tagFor(msg.Kind())] = tag

	return json.Marshal(fields)
}

type envelope struct {
	Action entity.MessageKind `json:"action"`
	Type   entity.MessageKind `json:"type"`
}

// Decode parses a tagged message into its concrete variant.
func Decode(raw []byte) (entity.Message, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	kind := env.Action
	if kind == "" {
		kind = env.Type
	}
	if kind == "" {
		return nil, fmt.Errorf("%w: missing action", ErrMalformedMessage)
	}

	var msg entity.Message
	switch kind {
	case entity.KindSetGlobalDarkMode:
		var m entity.SetGlobalDarkMode
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		msg = m
	case entity.KindToggleDarkMode:
		var m entity.ToggleDarkMode
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		msg = m
	case entity.KindSettingsUpdated:
		var m entity.SettingsUpdated
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		msg = m
	case entity.KindContentScriptLoaded:
		var m entity.ContentScriptLoaded
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		msg = m
	default:
		return nil, &UnknownMessageError{Kind: kind}
	}

	return msg, nil
}

// DecodeResponse parses a reply. An empty reply decodes to nil.
func DecodeResponse(raw []byte) (*entity.Response, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var resp entity.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return &resp, nil
}
