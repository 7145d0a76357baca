package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/stylesheet"
	"github.com/bnema/dimmer/internal/logging"
)

// StyleApplicator installs and removes the dark mode style sheets on a document.
// Every operation is idempotent: the sheet is replaced, never stacked.
type StyleApplicator struct{}

// NewStyleApplicator creates a new style applicator.
func NewStyleApplicator() *StyleApplicator {
	return &StyleApplicator{}
}

// Apply installs the tier sheet for intensity and marks the body.
func (a *StyleApplicator) Apply(ctx context.Context, doc port.Document, intensity entity.Intensity) error {
	intensity = intensity.OrDefault()
	log := logging.FromContext(ctx)

	if err := doc.UpsertStyleSheet(ctx, stylesheet.StyleID, stylesheet.DarkModeCSS(intensity)); err != nil {
		return fmt.Errorf("failed to install dark mode sheet: %w", err)
	}
	if err := doc.AddClass(ctx, stylesheet.MarkerClass); err != nil {
		return fmt.Errorf("failed to mark document: %w", err)
	}

	log.Debug().Str("intensity", intensity.String()).Msg("dark mode applied")
	return nil
}

// Remove deletes the tier sheet and the marker class. Safe when nothing was applied.
// The forced sheet is left alone.
func (a *StyleApplicator) Remove(ctx context.Context, doc port.Document) error {
	if err := doc.RemoveStyleSheet(ctx, stylesheet.StyleID); err != nil {
		return fmt.Errorf("failed to remove dark mode sheet: %w", err)
	}
	if err := doc.RemoveClass(ctx, stylesheet.MarkerClass); err != nil {
		return fmt.Errorf("failed to unmark document: %w", err)
	}

	logging.FromContext(ctx).Debug().Msg("dark mode removed")
	return nil
}

// ApplyState applies or removes according to state.
func (a *StyleApplicator) ApplyState(ctx context.Context, doc port.Document, state entity.EffectiveState) error {
	if state.Enabled {
		return a.Apply(ctx, doc, state.Intensity)
	}
	return a.Remove(ctx, doc)
}

// ApplyAggressive installs the unscoped forced sheet. It is independent of the
// toggle state and only replaced by another ApplyAggressive.
func (a *StyleApplicator) ApplyAggressive(ctx context.Context, doc port.Document) error {
	if err := doc.UpsertStyleSheet(ctx, stylesheet.AggressiveStyleID, stylesheet.AggressiveCSS()); err != nil {
		return fmt.Errorf("failed to install forced dark sheet: %w", err)
	}

	logging.FromContext(ctx).Debug().Msg("forced dark mode applied")
	return nil
}

// RemoveAggressive deletes the forced sheet, if present.
func (a *StyleApplicator) RemoveAggressive(ctx context.Context, doc port.Document) error {
	if err := doc.RemoveStyleSheet(ctx, stylesheet.AggressiveStyleID); err != nil {
		return fmt.Errorf("failed to remove forced dark sheet: %w", err)
	}
	return nil
}
