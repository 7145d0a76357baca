package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/domain/url"
	"github.com/bnema/dimmer/internal/logging"
)

// WebsiteEntry is one override, flattened for listing.
type WebsiteEntry struct {
	Domain string
	entity.WebsiteSetting
}

// ManageWebsitesUseCase handles per-domain overrides.
// Writes are read-modify-write of the whole map with no locking; two
// concurrent writers can lose one update.
type ManageWebsitesUseCase struct {
	repo repository.SettingsRepository
	now  func() time.Time
}

// NewManageWebsitesUseCase creates a new website override use case.
func NewManageWebsitesUseCase(repo repository.SettingsRepository) *ManageWebsitesUseCase {
	return &ManageWebsitesUseCase{repo: repo, now: defaultNow}
}

// WithClock replaces the time source used for AddedDate.
func (uc *ManageWebsitesUseCase) WithClock(now func() time.Time) *ManageWebsitesUseCase {
	uc.now = now
	return uc
}

// List returns every override sorted by domain.
func (uc *ManageWebsitesUseCase) List(ctx context.Context) ([]WebsiteEntry, error) {
	sites, err := loadWebsites(ctx, uc.repo)
	if err != nil {
		return nil, err
	}

	entries := make([]WebsiteEntry, 0, len(sites))
	for domain, setting := range sites {
		entries = append(entries, WebsiteEntry{Domain: domain, WebsiteSetting: setting})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Domain < entries[j].Domain })
	return entries, nil
}

// Set stores the override for an already-normalized hostname.
func (uc *ManageWebsitesUseCase) Set(ctx context.Context, domain string, enabled bool) error {
	log := logging.FromContext(ctx)
	if domain == "" {
		return fmt.Errorf("%w: empty domain", entity.ErrInvalidDomain)
	}

	sites, err := loadWebsites(ctx, uc.repo)
	if err != nil {
		return err
	}

	sites[domain] = entity.WebsiteSetting{DarkModeEnabled: enabled, AddedDate: uc.now()}
	if err := uc.repo.Set(ctx, map[entity.SettingKey]any{entity.KeyWebsiteSettings: sites}); err != nil {
		return fmt.Errorf("failed to save website setting: %w", err)
	}

	log.Info().Str("domain", domain).Bool("enabled", enabled).Msg("website override saved")
	return nil
}

// AddException validates hand-typed input and stores the override.
// It returns the normalized domain.
func (uc *ManageWebsitesUseCase) AddException(ctx context.Context, input string, enabled bool) (string, error) {
	domain, err := url.ValidateDomain(input)
	if err != nil {
		return "", err
	}
	if err := uc.Set(ctx, domain, enabled); err != nil {
		return "", err
	}
	return domain, nil
}

// Remove deletes the override for domain. Removing an unknown domain is a no-op.
func (uc *ManageWebsitesUseCase) Remove(ctx context.Context, domain string) error {
	log := logging.FromContext(ctx)

	sites, err := loadWebsites(ctx, uc.repo)
	if err != nil {
		return err
	}
	if _, ok := sites[domain]; !ok {
		log.Debug().Str("domain", domain).Msg("no website override to remove")
		return nil
	}

	delete(sites, domain)
	if err := uc.repo.Set(ctx, map[entity.SettingKey]any{entity.KeyWebsiteSettings: sites}); err != nil {
		return fmt.Errorf("failed to remove website setting: %w", err)
	}

	log.Info().Str("domain", domain).Msg("website override removed")
	return nil
}
