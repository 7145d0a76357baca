// Package pagehost keeps track of open pages and carries messages between the
// background coordinator and the page agents, in process.
package pagehost

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/infrastructure/messaging"
	"github.com/bnema/dimmer/internal/logging"
)

// BackgroundID is the sender id used for messages coming from the background.
const BackgroundID entity.PageID = "background"

type hostedPage struct {
	page   entity.Page
	doc    port.Document
	router *messaging.Router
}

// Host is an in-process page registry. Every message crosses it as encoded
// JSON, so surfaces never share memory.
type Host struct {
	mu         sync.RWMutex
	pages      map[entity.PageID]*hostedPage
	order      []entity.PageID
	active     entity.PageID
	background *messaging.Router
	nextID     int
}

var (
	_ port.PageRegistry        = (*Host)(nil)
	_ port.PageMessenger       = (*Host)(nil)
	_ port.BackgroundMessenger = (*Host)(nil)
	_ port.DocumentProvider    = (*Host)(nil)
)

// New creates an empty host.
func New() *Host {
	return &Host{pages: make(map[entity.PageID]*hostedPage)}
}

// SetBackground installs the background coordinator's router.
func (h *Host) SetBackground(router *messaging.Router) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.background = router
}

// Open registers a new page showing rawURL. The page has no listener until
// Attach is called. The first page opened becomes active.
func (h *Host) Open(rawURL, title string, doc port.Document) entity.PageID {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := entity.PageID(strconv.Itoa(h.nextID))
	h.pages[id] = &hostedPage{
		page: entity.Page{ID: id, URL: rawURL, Title: title},
		doc:  doc,
	}
	h.order = append(h.order, id)
	if h.active == "" {
		h.active = id
	}
	return id
}

// Attach installs the page agent's router on page id.
func (h *Host) Attach(id entity.PageID, router *messaging.Router) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.pages[id]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrPageNotFound, id)
	}
	p.router = router
	return nil
}

// Navigate points page id at a new URL. The listener is dropped, as a fresh
// document has no agent until one attaches.
func (h *Host) Navigate(id entity.PageID, rawURL string, doc port.Document) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.pages[id]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrPageNotFound, id)
	}
	p.page.URL = rawURL
	p.doc = doc
	p.router = nil
	return nil
}

// Activate focuses page id.
func (h *Host) Activate(id entity.PageID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.pages[id]; !ok {
		return fmt.Errorf("%w: %s", entity.ErrPageNotFound, id)
	}
	h.active = id
	return nil
}

// Close removes page id. Messages to it then fail with a DeliveryError.
func (h *Host) Close(id entity.PageID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.pages, id)
	for i, pid := range h.order {
		if pid == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	if h.active == id {
		h.active = ""
		if len(h.order) > 0 {
			h.active = h.order[0]
		}
	}
}

// OpenPages returns every open page in opening order.
func (h *Host) OpenPages(_ context.Context) ([]entity.Page, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	pages := make([]entity.Page, 0, len(h.order))
	for _, id := range h.order {
		p := h.pages[id].page
		p.Active = id == h.active
		pages = append(pages, p)
	}
	return pages, nil
}

// ActivePage returns the focused page, or nil when no page is open.
func (h *Host) ActivePage(_ context.Context) (*entity.Page, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, ok := h.pages[h.active]
	if !ok {
		return nil, nil
	}
	page := p.page
	page.Active = true
	return &page, nil
}

// Document returns the document of page id.
func (h *Host) Document(_ context.Context, id entity.PageID) (port.Document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p, ok := h.pages[id]
	if !ok || p.doc == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrPageNotFound, id)
	}
	return p.doc, nil
}

// SendToPage delivers msg to the agent of page id.
func (h *Host) SendToPage(ctx context.Context, id entity.PageID, msg entity.Message) (*entity.Response, error) {
	h.mu.RLock()
	p, ok := h.pages[id]
	var router *messaging.Router
	if ok {
		router = p.router
	}
	h.mu.RUnlock()

	if !ok {
		return nil, &entity.DeliveryError{PageID: id, Err: entity.ErrPageNotFound}
	}
	if router == nil {
		return nil, &entity.DeliveryError{PageID: id, Err: entity.ErrNoListener}
	}

	ctx = logging.WithPageID(ctx, string(id))
	return h.deliver(ctx, id, BackgroundID, router, msg)
}

// SendToBackground delivers msg to the background coordinator.
func (h *Host) SendToBackground(ctx context.Context, from entity.PageID, msg entity.Message) (*entity.Response, error) {
	h.mu.RLock()
	router := h.background
	h.mu.RUnlock()

	if router == nil {
		return nil, &entity.DeliveryError{PageID: BackgroundID, Err: entity.ErrNoListener}
	}
	return h.deliver(ctx, BackgroundID, from, router, msg)
}

func (h *Host) deliver(
	ctx context.Context,
	to, from entity.PageID,
	router *messaging.Router,
	msg entity.Message,
) (*entity.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, &entity.DeliveryError{PageID: to, Err: err}
	}

	raw, err := messaging.Encode(msg)
	if err != nil {
		return nil, &entity.DeliveryError{PageID: to, Err: err}
	}

	reply, err := router.Dispatch(ctx, from, raw)
	if err != nil {
		return nil, &entity.DeliveryError{PageID: to, Err: err}
	}

	resp, err := messaging.DecodeResponse(reply)
	if err != nil {
		return nil, &entity.DeliveryError{PageID: to, Err: err}
	}
	return resp, nil
}
