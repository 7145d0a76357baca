package entity

import (
	"fmt"
	"strings"
)

// Intensity selects one of the fixed dark palettes.
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityDeep   Intensity = "deep"
)

// DefaultIntensity is used whenever no intensity has been stored or the stored one is unknown.
const DefaultIntensity = IntensityDeep

// Intensities lists the supported tiers from lightest to darkest.
func Intensities() []Intensity {
	return []Intensity{IntensityLight, IntensityMedium, IntensityDeep}
}

// IsValid reports whether i is one of the supported tiers.
func (i Intensity) IsValid() bool {
	switch i {
	case IntensityLight, IntensityMedium, IntensityDeep:
		return true
	}
	return false
}

// OrDefault returns i, or DefaultIntensity when i is empty or unknown.
func (i Intensity) OrDefault() Intensity {
	if i.IsValid() {
		return i
	}
	return DefaultIntensity
}

func (i Intensity) String() string {
	return string(i)
}

// ParseIntensity parses user input (case-insensitive).
func ParseIntensity(s string) (Intensity, error) {
	i := Intensity(strings.ToLower(strings.TrimSpace(s)))
	if !i.IsValid() {
		return "", fmt.Errorf("unknown intensity %q (want light, medium or deep)", s)
	}
	return i, nil
}

// Palette is the colour triple painted by one intensity tier.
type Palette struct {
	Background string
	Text       string
	Border     string
}

var palettes = map[Intensity]Palette{
	IntensityLight:  {Background: "#1a1a1a", Text: "#e0e0e0", Border: "#444444"},
	IntensityMedium: {Background: "#121212", Text: "#d0d0d0", Border: "#333333"},
	IntensityDeep:   {Background: "#000000", Text: "#e0e0e0", Border: "#333333"},
}

// PaletteFor returns the colours for i. Unknown tiers get the deep palette.
func PaletteFor(i Intensity) Palette {
	return palettes[i.OrDefault()]
}
