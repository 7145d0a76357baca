package port

import (
	"context"

	"github.com/bnema/dimmer/internal/domain/entity"
)

// Document is the style surface of one page.
// Class operations act on the body element.
type Document interface {
	// UpsertStyleSheet installs a style element with the given id, or replaces
	// the content of the existing one.
	UpsertStyleSheet(ctx context.Context, id, css string) error

	// RemoveStyleSheet removes the style element with the given id, if present.
	RemoveStyleSheet(ctx context.Context, id string) error

	// AddClass adds class to the body. Adding a present class is a no-op.
	AddClass(ctx context.Context, class string) error

	// RemoveClass removes class from the body. Removing an absent class is a no-op.
	RemoveClass(ctx context.Context, class string) error
}

// DocumentProvider gives direct access to an open page's document, bypassing
// the page agent. Used for one-shot injections such as forced dark mode.
type DocumentProvider interface {
	Document(ctx context.Context, id entity.PageID) (Document, error)
}
