package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/logging"
)

// Handler handles one decoded message. A nil response means no reply
// (fire-and-forget messages).
type Handler interface {
	Handle(ctx context.Context, from entity.PageID, msg entity.Message) (*entity.Response, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, from entity.PageID, msg entity.Message) (*entity.Response, error)

// Handle calls f(ctx, from, msg).
func (f HandlerFunc) Handle(ctx context.Context, from entity.PageID, msg entity.Message) (*entity.Response, error) {
	return f(ctx, from, msg)
}

// Router dispatches raw messages to the handler registered for their kind.
// Each surface (background, every page agent) owns one router.
type Router struct {
	name     string
	mu       sync.RWMutex
	handlers map[entity.MessageKind]Handler
}

// NewRouter creates a new message router. name shows up in logs.
func NewRouter(name string) *Router {
	return &Router{
		name:     name,
		handlers: make(map[entity.MessageKind]Handler),
	}
}

// RegisterHandler registers a handler for a message kind.
func (r *Router) RegisterHandler(kind entity.MessageKind, handler Handler) error {
	if kind == "" {
		return errors.New("message kind cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = handler
	return nil
}

// Dispatch decodes raw, runs the matching handler and returns the encoded reply.
// Unknown kinds are answered with {success:false, error:"Unknown action: X"}.
// A nil reply means the handler sent none.
func (r *Router) Dispatch(ctx context.Context, from entity.PageID, raw []byte) ([]byte, error) {
	log := logging.FromContext(ctx).With().Str("component", "message-router").Str("router", r.name).Logger()

	msg, err := Decode(raw)
	if err != nil {
		var unknown *UnknownMessageError
		if errors.As(err, &unknown) {
			log.Debug().Str("kind", string(unknown.Kind)).Msg("unknown message")
			return json.Marshal(entity.Fail(unknown.Error()))
		}
		return nil, err
	}

	r.mu.RLock()
	handler, ok := r.handlers[msg.Kind()]
	r.mu.RUnlock()
	if !ok {
		log.Debug().Str("kind", string(msg.Kind())).Msg("no handler registered")
		return json.Marshal(entity.Fail((&UnknownMessageError{Kind: msg.Kind()}).Error()))
	}

	resp, err := handler.Handle(ctx, from, msg)
	if err != nil {
		log.Warn().Err(err).Str("kind", string(msg.Kind())).Msg("message handler failed")
		return json.Marshal(entity.Fail(err.Error()))
	}
	if resp == nil {
		return nil, nil
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return out, nil
}
