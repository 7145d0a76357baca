package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/url"
)

var statusCmd = &cobra.Command{
	Use:   "status [url...]",
	Short: "Show dark mode settings and the state of pages",
	Long: `Show the global dark mode settings.

For every URL given, and every page opened with --page, show whether dark mode
is on and whether a site exception decides it.

Examples:
  dimmer status
  dimmer status github.com chrome://settings`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	renderer := styles.NewSettingsRenderer(app.Theme)

	settings, err := app.SettingsUC.Execute(ctx)
	if err != nil {
		fmt.Println(renderer.RenderResult("", err))
	}
	fmt.Print(renderer.RenderGlobal(settings.Global))

	targets := make([]string, 0, len(args)+len(app.Pages.Files()))
	for _, a := range args {
		targets = append(targets, url.Normalize(a))
	}
	for _, p := range app.Pages.Files() {
		targets = append(targets, p.URL)
	}

	for _, rawURL := range targets {
		state, err := app.ResolveUC.ExecuteWith(rawURL, settings)
		switch {
		case errors.Is(err, entity.ErrUnsupportedSurface):
			fmt.Print(renderer.RenderUnavailable(rawURL))
		case err != nil:
			fmt.Println(renderer.RenderResult("", err))
		default:
			fmt.Print(renderer.RenderPageState(state))
		}
	}
	return nil
}
