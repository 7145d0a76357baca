package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/app/background"
	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/domain/entity"
)

var enableIntensity string

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn dark mode on everywhere",
	Long: `Turn global dark mode on and push it to every open page.

Pages with a site exception keep their own setting. Without --intensity the
stored intensity is kept.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSetGlobal(true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn dark mode off everywhere",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSetGlobal(false)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip global dark mode (same as the toggle-dark-mode shortcut)",
	Args:  cobra.NoArgs,
	RunE:  runToggle,
}

var intensityCmd = &cobra.Command{
	Use:       "intensity <light|medium|deep>",
	Short:     "Change the dark mode intensity",
	Long:      `Store a new intensity and repaint every page that is currently dark.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "medium", "deep"},
	RunE:      runIntensity,
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(intensityCmd)
	enableCmd.Flags().StringVarP(&enableIntensity, "intensity", "i", "", "intensity to enable with (light, medium, deep)")
}

func runSetGlobal(enabled bool) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	renderer := styles.NewSettingsRenderer(app.Theme)

	var intensity entity.Intensity
	if enabled && enableIntensity != "" {
		if intensity, err = entity.ParseIntensity(enableIntensity); err != nil {
			return err
		}
	}
	if intensity == "" {
		settings, _ := app.SettingsUC.Execute(ctx)
		intensity = settings.Global.DarkModeIntensity
	}

	report, err := app.GlobalUC.Execute(ctx, enabled, intensity)
	if err != nil {
		return err
	}

	msg := "Dark mode disabled globally"
	if enabled {
		msg = fmt.Sprintf("Dark mode enabled globally (%s)", intensity)
	}
	fmt.Println(renderer.RenderResult(msg, nil))
	fmt.Print(renderer.RenderReport(report))
	return nil
}

func runToggle(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	renderer := styles.NewSettingsRenderer(app.Theme)

	if err := app.Background.HandleCommand(ctx, background.CommandToggleDarkMode); err != nil {
		return err
	}

	settings, _ := app.SettingsUC.Execute(ctx)
	fmt.Println(renderer.RenderResult(
		fmt.Sprintf("Dark mode %s", onOff(settings.Global.DarkModeEnabled)), nil,
	))
	return nil
}

func runIntensity(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewSettingsRenderer(app.Theme)

	intensity, err := entity.ParseIntensity(args[0])
	if err != nil {
		return err
	}

	report, err := app.GlobalUC.ChangeIntensity(app.Ctx(), intensity)
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderResult("Intensity set to "+app.Theme.IntensitySwatch(intensity), nil))
	fmt.Print(renderer.RenderReport(report))
	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
