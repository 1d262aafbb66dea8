package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#007BFF")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c != (Color{0, 123, 255}) {
		t.Fatalf("got %+v", c)
	}
	if c.Hex() != "#007BFF" {
		t.Fatalf("round trip: got %q", c.Hex())
	}
	if _, err := ParseHex("nope"); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestLoadPaletteOverridesOnlyGivenEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("primary: \"#112233\"\ndanger: \"AABBCC\"\n"), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	pal, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	if pal.Primary != (Color{0x11, 0x22, 0x33}) {
		t.Fatalf("primary override: %+v", pal.Primary)
	}
	if pal.Danger != (Color{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("danger override: %+v", pal.Danger)
	}
	if pal.Secondary != DefaultPalette().Secondary {
		t.Fatalf("untouched entry changed: %+v", pal.Secondary)
	}
}

func TestLoadPaletteMissingFile(t *testing.T) {
	if _, err := LoadPalette("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error")
	}
}
