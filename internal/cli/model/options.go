package model

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
)

// ErrAborted is returned when the user leaves a form without submitting.
var ErrAborted = errors.New("aborted")

// Field keys of the options form.
const (
	KeyExtensionEnabled  = "extension_enabled"
	KeyDarkModeEnabled   = "dark_mode_enabled"
	KeyDarkModeIntensity = "dark_mode_intensity"
	KeyAutoApplyDarkMode = "auto_apply_dark_mode"
)

// IntensityOptions lists the intensity choices, lightest first.
func IntensityOptions() []huh.Option[entity.Intensity] {
	labels := map[entity.Intensity]string{
		entity.IntensityLight:  "Light (dark grey)",
		entity.IntensityMedium: "Medium (near black)",
		entity.IntensityDeep:   "Deep (pure black)",
	}
	intensities := entity.Intensities()
	opts := make([]huh.Option[entity.Intensity], 0, len(intensities))
	for _, i := range intensities {
		opts = append(opts, huh.NewOption(labels[i], i))
	}
	return opts
}

// NewOptionsForm builds the options page form bound to form.
func NewOptionsForm(form *usecase.OptionsForm) *huh.Form {
	form.DarkModeIntensity = form.DarkModeIntensity.OrDefault()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key(KeyExtensionEnabled).
				Title("Extension enabled").
				Description("Stored for future use; dark mode works either way.").
				Value(&form.ExtensionEnabled),
			huh.NewConfirm().
				Key(KeyDarkModeEnabled).
				Title("Dark mode").
				Description("Global switch. Site exceptions still win.").
				Affirmative("On").
				Negative("Off").
				Value(&form.DarkModeEnabled),
			huh.NewSelect[entity.Intensity]().
				Key(KeyDarkModeIntensity).
				Title("Intensity").
				Options(IntensityOptions()...).
				Value(&form.DarkModeIntensity),
			huh.NewConfirm().
				Key(KeyAutoApplyDarkMode).
				Title("Apply automatically").
				Description("Stored for future use.").
				Value(&form.AutoApplyDarkMode),
		),
	)
}

// NewResetConfirm builds the reset confirmation prompt.
func NewResetConfirm(confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all settings to default?").
				Description("Website exceptions are kept.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(confirmed),
		),
	)
}

// RunForm runs f, mapping a user abort to ErrAborted.
func RunForm(f *huh.Form, accessible bool) error {
	err := f.WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
