package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Palette is the fixed slide color scheme. The defaults match the product
// palette; a YAML file can override individual entries.
type Palette struct {
	Primary   Color
	Secondary Color
	Success   Color
	Warning   Color
	Danger    Color
	Dark      Color
	Light     Color
	White     Color
}

func DefaultPalette() Palette {
	return Palette{
		Primary:   Color{0, 123, 255},
		Secondary: Color{108, 117, 125},
		Success:   Color{40, 167, 69},
		Warning:   Color{255, 193, 7},
		Danger:    Color{220, 53, 69},
		Dark:      Color{52, 58, 64},
		Light:     Color{248, 249, 250},
		White:     Color{255, 255, 255},
	}
}

type paletteFile struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Success   string `yaml:"success"`
	Warning   string `yaml:"warning"`
	Danger    string `yaml:"danger"`
	Dark      string `yaml:"dark"`
	Light     string `yaml:"light"`
}

// LoadPalette reads a YAML palette override file. Entries left out keep
// their default.
func LoadPalette(path string) (Palette, error) {
	pal := DefaultPalette()

	raw, err := os.ReadFile(path)
	if err != nil {
		return pal, fmt.Errorf("read palette file: %w", err)
	}
	var pf paletteFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return pal, fmt.Errorf("parse palette file: %w", err)
	}

	assign := func(dst *Color, hex string) error {
		if hex == "" {
			return nil
		}
		c, err := ParseHex(hex)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}
	for _, pair := range []struct {
		dst *Color
		hex string
	}{
		{&pal.Primary, pf.Primary},
		{&pal.Secondary, pf.Secondary},
		{&pal.Success, pf.Success},
		{&pal.Warning, pf.Warning},
		{&pal.Danger, pf.Danger},
		{&pal.Dark, pf.Dark},
		{&pal.Light, pf.Light},
	} {
		if err := assign(pair.dst, pair.hex); err != nil {
			return pal, err
		}
	}
	return pal, nil
}
