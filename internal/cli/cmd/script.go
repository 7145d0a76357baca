package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/infrastructure/document"
)

var scriptIntensity string

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the JavaScript that styles a live page",
	Long: `Print self-contained scripts that apply or remove dark mode in a live page,
for userscript managers or a browser's devtools console. Every script is
idempotent: running it twice leaves one style sheet.`,
}

var scriptApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Print the script that enables dark mode",
	Long:  `Print the enable script. Without --intensity the stored intensity is used.`,
	Args:  cobra.NoArgs,
	RunE:  runScriptApply,
}

var scriptRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Print the script that disables dark mode",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		return app.Styles.Remove(app.Ctx(), scriptDocument())
	},
}

var scriptForceCmd = &cobra.Command{
	Use:   "force",
	Short: "Print the aggressive force-dark script",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		return app.Styles.ApplyAggressive(app.Ctx(), scriptDocument())
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptApplyCmd, scriptRemoveCmd, scriptForceCmd)
	scriptApplyCmd.Flags().StringVarP(&scriptIntensity, "intensity", "i", "", "intensity (light, medium, deep)")
}

func scriptDocument() *document.Scripted {
	return document.NewScripted(document.NewWriterRunner(os.Stdout))
}

func runScriptApply(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	intensity := entity.DefaultIntensity
	if scriptIntensity != "" {
		if intensity, err = entity.ParseIntensity(scriptIntensity); err != nil {
			return err
		}
	} else {
		settings, _ := app.SettingsUC.Execute(ctx)
		intensity = settings.Global.DarkModeIntensity
	}

	return app.Styles.Apply(ctx, scriptDocument(), intensity)
}
