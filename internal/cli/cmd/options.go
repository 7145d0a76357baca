package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/cli/model"
	"github.com/bnema/dimmer/internal/cli/styles"
)

var (
	accessible bool
	resetYes   bool
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Edit all settings in a form",
	Long: `Edit the global settings in an interactive form. Saving stamps the update
time and repaints open pages when dark mode or the intensity changed.`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset settings to default",
	Long: `Restore the default settings: extension enabled, dark mode off, deep
intensity, apply automatically. Website exceptions are kept.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(resetCmd)
	for _, c := range []*cobra.Command{optionsCmd, resetCmd} {
		c.Flags().BoolVar(&accessible, "accessible", os.Getenv("ACCESSIBLE") != "", "use accessible prompts")
	}
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation prompt")
}

func runOptions(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	renderer := styles.NewSettingsRenderer(app.Theme)

	settings, err := app.OptionsUC.Load(ctx)
	if err != nil {
		fmt.Println(renderer.RenderResult("", err))
	}

	form := usecase.FormFromSettings(settings.Global)
	if err := model.RunForm(model.NewOptionsForm(&form), accessible); err != nil {
		if errors.Is(err, model.ErrAborted) {
			return nil
		}
		return err
	}

	if err := app.OptionsUC.SaveAll(ctx, form); err != nil {
		return err
	}
	fmt.Println(renderer.RenderResult("Settings saved successfully!", nil))
	return nil
}

func runReset(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if !resetYes {
		confirmed := false
		if err := model.RunForm(model.NewResetConfirm(&confirmed), accessible); err != nil {
			if errors.Is(err, model.ErrAborted) {
				return nil
			}
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if err := app.OptionsUC.ResetToDefault(app.Ctx()); err != nil {
		return err
	}
	fmt.Println(styles.NewSettingsRenderer(app.Theme).RenderResult("Settings reset to default!", nil))
	return nil
}
