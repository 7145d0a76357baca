package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/dimmer/internal/application/port"
	portmocks "github.com/bnema/dimmer/internal/application/port/mocks"
	mock_port "github.com/bnema/dimmer/internal/application/port/mockgen"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
	repomocks "github.com/bnema/dimmer/internal/domain/repository/mocks"
	"github.com/bnema/dimmer/internal/domain/stylesheet"
	"github.com/bnema/dimmer/internal/domain/url"
)

type docProvider map[entity.PageID]port.Document

func (d docProvider) Document(_ context.Context, id entity.PageID) (port.Document, error) {
	doc, ok := d[id]
	if !ok {
		return nil, entity.ErrPageNotFound
	}
	return doc, nil
}

type popupFixture struct {
	repo      *repomocks.MockSettingsRepository
	pages     *portmocks.MockPageRegistry
	messenger *mock_port.MockPageMessenger
	bg        *portmocks.MockBackgroundMessenger
	doc       *portmocks.MockDocument
	uc        *usecase.PopupUseCase
}

func newPopupFixture(t *testing.T) *popupFixture {
	t.Helper()
	f := &popupFixture{
		repo:      repomocks.NewMockSettingsRepository(t),
		pages:     portmocks.NewMockPageRegistry(t),
		messenger: mock_port.NewMockPageMessenger(gomock.NewController(t)),
		bg:        portmocks.NewMockBackgroundMessenger(t),
		doc:       portmocks.NewMockDocument(t),
	}
	f.uc = usecase.NewPopupUseCase(usecase.PopupDeps{
		Repo:       f.repo,
		Pages:      f.pages,
		Messenger:  f.messenger,
		Background: f.bg,
		Documents:  docProvider{"1": f.doc},
		Websites:   usecase.NewManageWebsitesUseCase(f.repo).WithClock(clock),
		Privileged: url.DefaultPrivilegedSchemes(),
	})
	return f
}

var activePage = &entity.Page{ID: "1", URL: "https://news.example/today", Active: true}

func TestPopupUseCase_Load(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.repo.EXPECT().Get(mock.Anything, entity.AllKeys()).Return(map[entity.SettingKey]json.RawMessage{
		entity.KeyDarkModeEnabled: raw(t, true),
		entity.KeyWebsiteSettings: raw(t, entity.WebsiteSettings{"news.example": {DarkModeEnabled: false}}),
	}, nil)
	f.pages.EXPECT().ActivePage(mock.Anything).Return(activePage, nil)

	state, err := f.uc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, state.Available)
	assert.Equal(t, "news.example", state.Domain)
	assert.True(t, state.Global.DarkModeEnabled)
	assert.False(t, state.SiteEnabled)
	assert.True(t, state.HasOverride)
}

func TestPopupUseCase_LoadPrivilegedPage(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.repo.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)
	f.pages.EXPECT().ActivePage(mock.Anything).Return(&entity.Page{ID: "2", URL: "chrome://newtab"}, nil)

	state, err := f.uc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, state.Available)
	assert.Empty(t, state.Domain)
}

func TestPopupUseCase_ToggleGlobalConfirmed(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.repo.EXPECT().Get(mock.Anything, []entity.SettingKey{entity.KeyDarkModeIntensity}).
		Return(map[entity.SettingKey]json.RawMessage{entity.KeyDarkModeIntensity: raw(t, "medium")}, nil)
	f.bg.EXPECT().SendToBackground(mock.Anything, entity.PageID(""), entity.SetGlobalDarkMode{
		Enabled:   true,
		Intensity: entity.IntensityMedium,
	}).Return(&entity.Response{Success: true}, nil)

	msg, err := f.uc.ToggleGlobal(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Dark mode enabled globally", msg)
	f.repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestPopupUseCase_ToggleGlobalFallsBackToLocalSave(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.repo.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)
	f.bg.EXPECT().SendToBackground(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &entity.DeliveryError{PageID: "background", Err: entity.ErrNoListener})
	f.repo.EXPECT().Set(mock.Anything, map[entity.SettingKey]any{entity.KeyDarkModeEnabled: false}).Return(nil)
	f.pages.EXPECT().ActivePage(mock.Anything).Return(activePage, nil)
	f.messenger.EXPECT().SendToPage(gomock.Any(), entity.PageID("1"), entity.ToggleDarkMode{Enabled: false}).
		Return(entity.OK("Dark mode toggled"), nil)

	msg, err := f.uc.ToggleGlobal(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Dark mode disabled", msg)
}

func TestPopupUseCase_ToggleGlobalFallbackWithoutPage(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.repo.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)
	f.bg.EXPECT().SendToBackground(mock.Anything, mock.Anything, mock.Anything).
		Return(entity.Fail("Failed to notify tabs"), nil)
	f.repo.EXPECT().Set(mock.Anything, mock.Anything).Return(nil)
	f.pages.EXPECT().ActivePage(mock.Anything).Return(activePage, nil)
	f.messenger.EXPECT().SendToPage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &entity.DeliveryError{PageID: "1", Err: entity.ErrNoListener})

	msg, err := f.uc.ToggleGlobal(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Dark mode setting saved (enabled)", msg)
}

func TestPopupUseCase_ToggleGlobalSaveFailure(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.repo.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, nil)
	f.bg.EXPECT().SendToBackground(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("gone"))
	f.repo.EXPECT().Set(mock.Anything, mock.Anything).Return(storageErr("set"))

	_, err := f.uc.ToggleGlobal(ctx, true)
	assert.ErrorIs(t, err, entity.ErrStorage)
}

func TestPopupUseCase_ToggleSite(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.pages.EXPECT().ActivePage(mock.Anything).Return(activePage, nil)
	f.repo.EXPECT().Get(mock.Anything, websitesKey()).Return(nil, nil)
	f.repo.EXPECT().Set(mock.Anything, map[entity.SettingKey]any{
		entity.KeyWebsiteSettings: entity.WebsiteSettings{
			"news.example": {DarkModeEnabled: true, AddedDate: fixedNow},
		},
	}).Return(nil)
	f.messenger.EXPECT().SendToPage(gomock.Any(), entity.PageID("1"), entity.ToggleDarkMode{Enabled: true}).
		Return(entity.OK("Dark mode toggled"), nil)

	msg, err := f.uc.ToggleSite(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Dark mode enabled for news.example", msg)
}

func TestPopupUseCase_ToggleSiteUnreachablePage(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.pages.EXPECT().ActivePage(mock.Anything).Return(activePage, nil)
	f.repo.EXPECT().Get(mock.Anything, websitesKey()).Return(nil, nil)
	f.repo.EXPECT().Set(mock.Anything, mock.Anything).Return(nil)
	f.messenger.EXPECT().SendToPage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.Fail("Failed to toggle dark mode"), nil)

	msg, err := f.uc.ToggleSite(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Setting saved for news.example", msg)
}

func TestPopupUseCase_PrivilegedPageIsUnsupported(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.pages.EXPECT().ActivePage(mock.Anything).Return(&entity.Page{ID: "9", URL: "chrome-extension://abc/options.html"}, nil)

	_, err := f.uc.ToggleSite(ctx, true)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)

	_, err = f.uc.ForceDarkMode(ctx)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)
}

func TestPopupUseCase_NoActivePage(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.pages.EXPECT().ActivePage(mock.Anything).Return(nil, nil)

	_, err := f.uc.ForceDarkMode(ctx)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)
}

func TestPopupUseCase_ForceDarkMode(t *testing.T) {
	ctx := testContext()
	f := newPopupFixture(t)

	f.pages.EXPECT().ActivePage(mock.Anything).Return(activePage, nil)
	f.doc.EXPECT().UpsertStyleSheet(mock.Anything, stylesheet.AggressiveStyleID, stylesheet.AggressiveCSS()).Return(nil)

	msg, err := f.uc.ForceDarkMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aggressive dark mode applied!", msg)
}
