package port

import (
	"context"

	"github.com/bnema/dimmer/internal/domain/entity"
)

// PageRegistry enumerates the pages currently open.
type PageRegistry interface {
	// OpenPages returns every open page, including privileged ones.
	OpenPages(ctx context.Context) ([]entity.Page, error)

	// ActivePage returns the focused page, or nil if there is none.
	ActivePage(ctx context.Context) (*entity.Page, error)
}

// PageMessenger delivers a message to a single page's agent.
type PageMessenger interface {
	// SendToPage returns the page's reply. Transport failures (closed page,
	// no listener attached yet) are *entity.DeliveryError.
	SendToPage(ctx context.Context, id entity.PageID, msg entity.Message) (*entity.Response, error)
}

// BackgroundMessenger delivers a message to the background coordinator.
type BackgroundMessenger interface {
	// SendToBackground returns the background reply. Fire-and-forget messages
	// return a nil response.
	SendToBackground(ctx context.Context, from entity.PageID, msg entity.Message) (*entity.Response, error)
}
