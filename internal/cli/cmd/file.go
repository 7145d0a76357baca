package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/cli"
	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/infrastructure/document"
)

var (
	fileURL       string
	fileIntensity string
	fileOutput    string
)

var applyCmd = &cobra.Command{
	Use:   "apply <file.html>",
	Short: "Style a saved page with its current dark mode state",
	Long: `Resolve the dark mode state for the page (global switch, or the site
exception for --url) and apply or remove the dark stylesheet accordingly.

Examples:
  dimmer apply page.html --url https://news.example.com/
  dimmer apply page.html --intensity light -o dark.html`,
	Args: cobra.ExactArgs(1),
	RunE: runApplyFile,
}

var cleanCmd = &cobra.Command{
	Use:   "clean <file.html>",
	Short: "Remove dark styling from a saved page",
	Args:  cobra.ExactArgs(1),
	RunE:  runCleanFile,
}

var forceCmd = &cobra.Command{
	Use:   "force <file.html>",
	Short: "Force aggressive dark styling onto a saved page",
	Long: `Inject the aggressive stylesheet that overrides inline colours and images
backgrounds. It is not tied to the dark mode switch; use clean to remove it.`,
	Args: cobra.ExactArgs(1),
	RunE: runForceFile,
}

func init() {
	rootCmd.AddCommand(applyCmd, cleanCmd, forceCmd)
	applyCmd.Flags().StringVarP(&fileURL, "url", "u", "", "URL the page was saved from")
	applyCmd.Flags().StringVarP(&fileIntensity, "intensity", "i", "", "apply dark mode with this intensity regardless of settings")
	for _, c := range []*cobra.Command{applyCmd, cleanCmd, forceCmd} {
		c.Flags().StringVarP(&fileOutput, "output", "o", "", "write the result here instead of in place")
	}
}

func runApplyFile(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	renderer := styles.NewSettingsRenderer(app.Theme)

	doc, mode, err := readDocument(args[0])
	if err != nil {
		return err
	}

	var state entity.EffectiveState
	if fileIntensity != "" {
		intensity, err := entity.ParseIntensity(fileIntensity)
		if err != nil {
			return err
		}
		state = entity.EffectiveState{Enabled: true, Intensity: intensity}
	} else {
		rawURL := fileURL
		if rawURL == "" {
			_, rawURL, err = cli.ParsePageSpec(args[0])
			if err != nil {
				return err
			}
		}
		ps, err := app.ResolveUC.Execute(ctx, rawURL)
		if errors.Is(err, entity.ErrUnsupportedSurface) {
			fmt.Print(renderer.RenderUnavailable(rawURL))
			return nil
		}
		if err != nil {
			return err
		}
		state = ps.State
	}

	if err := app.Styles.ApplyState(ctx, doc, state); err != nil {
		return err
	}
	if err := writeOutput(args[0], doc, mode); err != nil {
		return err
	}

	msg := "Dark mode removed"
	if state.Enabled {
		msg = "Dark mode applied (" + state.Intensity.String() + ")"
	}
	fmt.Println(renderer.RenderResult(msg, nil))
	return nil
}

func runCleanFile(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	doc, mode, err := readDocument(args[0])
	if err != nil {
		return err
	}
	if err := app.Styles.Remove(app.Ctx(), doc); err != nil {
		return err
	}
	if err := app.Styles.RemoveAggressive(app.Ctx(), doc); err != nil {
		return err
	}
	if err := writeOutput(args[0], doc, mode); err != nil {
		return err
	}
	fmt.Println(styles.NewSettingsRenderer(app.Theme).RenderResult("Dark styling removed", nil))
	return nil
}

func runForceFile(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	doc, mode, err := readDocument(args[0])
	if err != nil {
		return err
	}
	if err := app.Styles.ApplyAggressive(app.Ctx(), doc); err != nil {
		return err
	}
	if err := writeOutput(args[0], doc, mode); err != nil {
		return err
	}
	fmt.Println(styles.NewSettingsRenderer(app.Theme).RenderResult("Aggressive dark mode applied!", nil))
	return nil
}

func readDocument(path string) (*document.HTML, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	doc, err := document.ParseHTML(f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, info.Mode().Perm(), nil
}

func writeOutput(path string, doc *document.HTML, mode os.FileMode) error {
	if fileOutput != "" {
		path = fileOutput
	}
	return cli.WriteDocument(path, doc, mode)
}
