package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/cli/model"
	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/infrastructure/config"
	"github.com/bnema/dimmer/internal/logging"
)

var popupCmd = &cobra.Command{
	Use:   "popup",
	Short: "Quick settings for the active page",
	Long: `Open the quick-settings popup for the active page (the first --page).

Switch dark mode globally, set an exception for the page's site, cycle the
intensity, or force dark styling onto a page that resists it.`,
	Args: cobra.NoArgs,
	RunE: runPopup,
}

func init() {
	rootCmd.AddCommand(popupCmd)
}

// popupActions adds intensity changes to the popup use case.
type popupActions struct {
	*usecase.PopupUseCase
	global *usecase.SetGlobalDarkModeUseCase
}

func (a popupActions) ChangeIntensity(ctx context.Context, intensity entity.Intensity) (string, error) {
	if _, err := a.global.ChangeIntensity(ctx, intensity); err != nil {
		return "", err
	}
	return fmt.Sprintf("Intensity set to %s", intensity), nil
}

func runPopup(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	actions := popupActions{PopupUseCase: app.PopupUC, global: app.GlobalUC}
	keys := styles.NewPopupKeyMap(app.Config.Keybindings)
	m := model.NewPopupModel(app.Ctx(), app.Theme, keys, actions)

	p := tea.NewProgram(m)
	if app.Manager != nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigChangedMsg{Config: cfg})
		})
		if err := app.Manager.Watch(); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config changes will not be picked up")
		}
	}

	_, err = p.Run()
	return err
}
