package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/domain/darkmode"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/logging"
)

// DefaultBroadcastConcurrency bounds in-flight deliveries when none is configured.
const DefaultBroadcastConcurrency = 8

// BroadcastReport records what happened to each open page during one broadcast.
type BroadcastReport struct {
	Delivered []entity.PageID
	Failed    []entity.PageID
	Skipped   []entity.PageID
}

// Targets returns the number of pages a delivery was attempted on.
func (r *BroadcastReport) Targets() int {
	return len(r.Delivered) + len(r.Failed)
}

// BroadcastUseCase pushes the resolved dark mode state to every open page.
// Delivery is best-effort: one page failing never affects the others, and
// nothing is retried.
type BroadcastUseCase struct {
	pages          port.PageRegistry
	messenger      port.PageMessenger
	privileged     []string
	maxConcurrency int
}

// NewBroadcastUseCase creates a new broadcast coordinator.
// privileged lists URL schemes whose pages are never messaged.
func NewBroadcastUseCase(
	pages port.PageRegistry,
	messenger port.PageMessenger,
	privileged []string,
	maxConcurrency int,
) *BroadcastUseCase {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultBroadcastConcurrency
	}
	return &BroadcastUseCase{
		pages:          pages,
		messenger:      messenger,
		privileged:     privileged,
		maxConcurrency: maxConcurrency,
	}
}

// Broadcast sends each reachable page its own resolved state as a
// toggleDarkMode message. It returns once every target was attempted; only a
// failure to enumerate the open pages is returned as an error.
func (uc *BroadcastUseCase) Broadcast(ctx context.Context, snapshot entity.Settings) (*BroadcastReport, error) {
	ctx = logging.WithComponent(ctx, "broadcast")
	log := logging.FromContext(ctx)

	pages, err := uc.pages.OpenPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open pages: %w", err)
	}

	report := &BroadcastReport{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.maxConcurrency)

	for _, page := range pages {
		state, _, resolveErr := darkmode.ResolveURL(page.URL, snapshot, uc.privileged)
		if resolveErr != nil {
			report.Skipped = append(report.Skipped, page.ID)
			continue
		}

		g.Go(func() error {
			deliverErr := uc.deliver(gctx, page.ID, state)

			mu.Lock()
			defer mu.Unlock()
			if deliverErr != nil {
				log.Debug().Err(deliverErr).Str("page_id", string(page.ID)).Msg("page not updated")
				report.Failed = append(report.Failed, page.ID)
				return nil // don't fail the whole broadcast
			}
			report.Delivered = append(report.Delivered, page.ID)
			return nil
		})
	}

	_ = g.Wait()

	log.Info().
		Int("delivered", len(report.Delivered)).
		Int("failed", len(report.Failed)).
		Int("skipped", len(report.Skipped)).
		Msg("dark mode broadcast finished")

	return report, nil
}

func (uc *BroadcastUseCase) deliver(ctx context.Context, id entity.PageID, state entity.EffectiveState) error {
	resp, err := uc.messenger.SendToPage(ctx, id, entity.ToggleDarkMode{Enabled: state.Enabled})
	if err != nil {
		return err
	}
	if resp != nil && !resp.Success {
		return &entity.DeliveryError{PageID: id, Err: errors.New(resp.Error)}
	}
	return nil
}
