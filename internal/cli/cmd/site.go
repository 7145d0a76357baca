package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/cli/styles"
)

var siteLight bool

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Manage per-site exceptions",
	Long: `A site exception decides dark mode for one exact hostname, whatever the
global switch says. www.example.com and example.com are different sites.`,
}

var siteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List site exceptions",
	Args:    cobra.NoArgs,
	RunE:    runSiteList,
}

var siteAddCmd = &cobra.Command{
	Use:   "add <domain>",
	Short: "Add or replace a site exception",
	Long: `Add an exception for a domain. Dark mode is forced on for it unless --light
is given. Open pages are not repainted; they pick the exception up on their
next load.`,
	Args: cobra.ExactArgs(1),
	RunE: runSiteAdd,
}

var siteRemoveCmd = &cobra.Command{
	Use:     "remove <domain>",
	Aliases: []string{"rm"},
	Short:   "Remove a site exception",
	Args:    cobra.ExactArgs(1),
	RunE:    runSiteRemove,
}

var siteOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Force dark mode on for the active page's site",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSiteToggle(true)
	},
}

var siteOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Force dark mode off for the active page's site",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSiteToggle(false)
	},
}

func init() {
	rootCmd.AddCommand(siteCmd)
	siteCmd.AddCommand(siteListCmd, siteAddCmd, siteRemoveCmd, siteOnCmd, siteOffCmd)
	siteAddCmd.Flags().BoolVar(&siteLight, "light", false, "keep the site light instead of dark")
}

func runSiteList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	entries, err := app.OptionsUC.ListWebsiteExceptions(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Print(styles.NewSettingsRenderer(app.Theme).RenderWebsites(entries))
	return nil
}

func runSiteAdd(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	domain, err := app.OptionsUC.AddWebsiteException(app.Ctx(), args[0], !siteLight)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewSettingsRenderer(app.Theme).RenderResult(
		fmt.Sprintf("Added %s (dark mode %s)", domain, onOff(!siteLight)), nil,
	))
	return nil
}

func runSiteRemove(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := app.OptionsUC.RemoveWebsiteException(app.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(styles.NewSettingsRenderer(app.Theme).RenderResult("Removed "+args[0], nil))
	return nil
}

func runSiteToggle(enabled bool) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	msg, err := app.PopupUC.ToggleSite(app.Ctx(), enabled)
	fmt.Println(styles.NewSettingsRenderer(app.Theme).RenderResult(msg, err))
	return nil
}
