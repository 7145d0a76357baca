package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/stylesheet"
	"github.com/bnema/dimmer/internal/infrastructure/config"
	"github.com/bnema/dimmer/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dimmer/internal/logging"
)

const testPage = `<!DOCTYPE html><html><head><title>t</title></head><body><p>hi</p></body></html>`

func newTestApp(t *testing.T) *App {
	t.Helper()
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))

	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "dimmer.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	conn, err := lazy.DB(ctx)
	require.NoError(t, err)

	app := &App{Config: config.DefaultConfig(), db: lazy, ctx: ctx}
	require.NoError(t, app.wire(sqlite.NewSettingsRepository(conn)))
	return app
}

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(testPage), 0o600))
	return path
}

func TestParsePageSpec(t *testing.T) {
	path, rawURL, err := ParsePageSpec("page.html@https://example.com/a")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "page.html", filepath.Base(path))
	assert.Equal(t, "https://example.com/a", rawURL)

	path, rawURL, err = ParsePageSpec("/tmp/x.html")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.html", path)
	assert.Equal(t, "file:///tmp/x.html", rawURL)

	_, _, err = ParsePageSpec("@https://example.com/")
	assert.Error(t, err)
}

func TestPageSession_BroadcastReachesOpenedPage(t *testing.T) {
	app := newTestApp(t)
	ctx := app.Ctx()
	path := writePage(t)

	page, err := app.Pages.Open(ctx, path+"@https://example.com/")
	require.NoError(t, err)
	assert.Empty(t, page.Doc.StyleSheets(stylesheet.StyleID))

	report, err := app.GlobalUC.Execute(ctx, true, entity.IntensityLight)
	require.NoError(t, err)
	assert.Equal(t, []entity.PageID{page.ID}, report.Delivered)
	assert.Len(t, page.Doc.StyleSheets(stylesheet.StyleID), 1)

	require.NoError(t, app.Pages.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), stylesheet.StyleID)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPageSession_OpenStylesFromStoredState(t *testing.T) {
	app := newTestApp(t)
	ctx := app.Ctx()

	_, err := app.GlobalUC.Execute(ctx, true, entity.IntensityDeep)
	require.NoError(t, err)

	page, err := app.Pages.Open(ctx, writePage(t)+"@https://example.com/")
	require.NoError(t, err)
	assert.Len(t, page.Doc.StyleSheets(stylesheet.StyleID), 1)
}

func TestPageSession_PrivilegedPageIsSkipped(t *testing.T) {
	app := newTestApp(t)
	ctx := app.Ctx()

	page, err := app.Pages.Open(ctx, writePage(t)+"@chrome://settings")
	require.NoError(t, err)

	report, err := app.GlobalUC.Execute(ctx, true, entity.IntensityDeep)
	require.NoError(t, err)
	assert.Equal(t, []entity.PageID{page.ID}, report.Skipped)
	assert.Empty(t, page.Doc.StyleSheets(stylesheet.StyleID))
}

func TestPageSession_SiteToggleFromPopup(t *testing.T) {
	app := newTestApp(t)
	ctx := app.Ctx()

	page, err := app.Pages.Open(ctx, writePage(t)+"@https://news.example.com/")
	require.NoError(t, err)

	msg, err := app.PopupUC.ToggleSite(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Dark mode enabled for news.example.com", msg)
	assert.Len(t, page.Doc.StyleSheets(stylesheet.StyleID), 1)

	entries, err := app.WebsitesUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "news.example.com", entries[0].Domain)
}

func TestPageSession_OpenMissingFile(t *testing.T) {
	app := newTestApp(t)

	_, err := app.Pages.Open(app.Ctx(), filepath.Join(t.TempDir(), "nope.html"))
	assert.Error(t, err)
	assert.Empty(t, app.Pages.Files())
}

func TestPageSession_RunsLoadedHook(t *testing.T) {
	app := newTestApp(t)

	var loaded []entity.Page
	app.Pages.OnLoaded(func(_ context.Context, p entity.Page) {
		loaded = append(loaded, p)
	})

	page, err := app.Pages.Open(app.Ctx(), writePage(t)+"@https://example.com/")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, page.ID, loaded[0].ID)
	assert.Equal(t, "https://example.com/", loaded[0].URL)
}
