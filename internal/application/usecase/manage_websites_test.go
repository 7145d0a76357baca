package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
	repomocks "github.com/bnema/dimmer/internal/domain/repository/mocks"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func storedSites(t *testing.T, sites entity.WebsiteSettings) map[entity.SettingKey]json.RawMessage {
	t.Helper()
	return map[entity.SettingKey]json.RawMessage{entity.KeyWebsiteSettings: raw(t, sites)}
}

// captureSites records the website map handed to Set.
func captureSites(repo *repomocks.MockSettingsRepository, out *entity.WebsiteSettings) {
	repo.EXPECT().Set(mock.Anything, mock.Anything).
		Run(func(_ context.Context, values map[entity.SettingKey]any) {
			*out = values[entity.KeyWebsiteSettings].(entity.WebsiteSettings)
		}).
		Return(nil).Once()
}

func TestManageWebsitesUseCase_AddException(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	repo.EXPECT().Get(mock.Anything, websitesKey()).Return(nil, nil)
	var written entity.WebsiteSettings
	captureSites(repo, &written)

	uc := usecase.NewManageWebsitesUseCase(repo).WithClock(clock)
	domain, err := uc.AddException(ctx, "  News.Example.com ", false)
	require.NoError(t, err)

	assert.Equal(t, "news.example.com", domain)
	assert.Equal(t, entity.WebsiteSettings{
		"news.example.com": {DarkModeEnabled: false, AddedDate: fixedNow},
	}, written)
}

func TestManageWebsitesUseCase_AddExceptionRejectsInvalidInput(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	uc := usecase.NewManageWebsitesUseCase(repo)

	for _, input := range []string{"", "   ", "localhost", ".example.com", "example."} {
		_, err := uc.AddException(ctx, input, true)
		assert.ErrorIs(t, err, entity.ErrInvalidDomain, input)
	}
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestManageWebsitesUseCase_SetKeepsOtherEntries(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	existing := entity.WebsiteSettings{
		"a.example": {DarkModeEnabled: true, AddedDate: fixedNow.Add(-time.Hour)},
	}
	repo.EXPECT().Get(mock.Anything, websitesKey()).Return(storedSites(t, existing), nil)
	var written entity.WebsiteSettings
	captureSites(repo, &written)

	uc := usecase.NewManageWebsitesUseCase(repo).WithClock(clock)
	require.NoError(t, uc.Set(ctx, "b.example", false))

	require.Len(t, written, 2)
	assert.True(t, written["a.example"].DarkModeEnabled)
	assert.False(t, written["b.example"].DarkModeEnabled)
}

func TestManageWebsitesUseCase_SetAbortsOnReadError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	repo.EXPECT().Get(mock.Anything, websitesKey()).Return(nil, storageErr("get"))

	err := usecase.NewManageWebsitesUseCase(repo).Set(ctx, "a.example", true)
	assert.ErrorIs(t, err, entity.ErrStorage)
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestManageWebsitesUseCase_CorruptMapIsNeverWrittenBack(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"not an object", `["keep.example"]`},
		{"bad entry", `{"keep.example":{"darkModeEnabled":true},"bad.example":{"darkModeEnabled":"yes"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			repo := repomocks.NewMockSettingsRepository(t)
			repo.EXPECT().Get(mock.Anything, websitesKey()).Return(map[entity.SettingKey]json.RawMessage{
				entity.KeyWebsiteSettings: json.RawMessage(tt.stored),
			}, nil)

			uc := usecase.NewManageWebsitesUseCase(repo)
			assert.ErrorIs(t, uc.Set(ctx, "new.example", true), entity.ErrStorage)
			assert.ErrorIs(t, uc.Remove(ctx, "keep.example"), entity.ErrStorage)
			repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
		})
	}
}

func TestManageWebsitesUseCase_Remove(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	existing := entity.WebsiteSettings{
		"a.example": {DarkModeEnabled: true},
		"b.example": {DarkModeEnabled: false},
	}
	repo.EXPECT().Get(mock.Anything, websitesKey()).Return(storedSites(t, existing), nil)
	var written entity.WebsiteSettings
	captureSites(repo, &written)

	uc := usecase.NewManageWebsitesUseCase(repo)
	require.NoError(t, uc.Remove(ctx, "b.example"))
	assert.Equal(t, []string{"a.example"}, keys(written))
}

func TestManageWebsitesUseCase_RemoveUnknownIsNoop(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	repo.EXPECT().Get(mock.Anything, websitesKey()).Return(nil, nil)

	require.NoError(t, usecase.NewManageWebsitesUseCase(repo).Remove(ctx, "missing.example"))
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestManageWebsitesUseCase_ListIsSorted(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	repo.EXPECT().Get(mock.Anything, websitesKey()).Return(storedSites(t, entity.WebsiteSettings{
		"zeta.example":  {DarkModeEnabled: true},
		"alpha.example": {DarkModeEnabled: false},
	}), nil)

	entries, err := usecase.NewManageWebsitesUseCase(repo).List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha.example", entries[0].Domain)
	assert.False(t, entries[0].DarkModeEnabled)
	assert.Equal(t, "zeta.example", entries[1].Domain)
}

func keys(sites entity.WebsiteSettings) []string {
	out := make([]string, 0, len(sites))
	for k := range sites {
		out = append(out, k)
	}
	return out
}
