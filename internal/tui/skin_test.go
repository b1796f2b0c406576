package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSkin(t *testing.T, dir, rel, body string) {
	t.Helper()
	p := filepath.Join(dir, "skins", rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSkin_Default(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "default", "  default "} {
		s, err := LoadSkin(name, t.TempDir())
		if err != nil {
			t.Fatalf("LoadSkin(%q) error: %v", name, err)
		}
		if s != DefaultSkin() {
			t.Fatalf("LoadSkin(%q) = %+v, want default", name, s)
		}
	}
}

func TestLoadSkin_YAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSkin(t, dir, "dark/ocean.yaml", "name: Ocean\ncolors:\n  title: \"#00aaff\"\n  tab-active: \"#123456\"\n")

	s, err := LoadSkin("ocean", dir)
	if err != nil {
		t.Fatalf("LoadSkin error: %v", err)
	}
	if s.Name != "Ocean" {
		t.Fatalf("name = %q, want Ocean", s.Name)
	}
	if s.Colors.Title != "#00aaff" || s.Colors.TabActive != "#123456" {
		t.Fatalf("colors not decoded: %+v", s.Colors)
	}
	if s.Colors.Border != DefaultSkin().Colors.Border {
		t.Fatalf("unset border = %q, want default", s.Colors.Border)
	}
	if got := s.Palette().Title; string(got) != "#00aaff" {
		t.Fatalf("palette title = %q", got)
	}
}

func TestLoadSkin_TOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSkin(t, dir, "paper.toml", "[colors]\ntext = \"#111111\"\nstatus-bg = \"#eeeeee\"\n")

	s, err := LoadSkin("paper", dir)
	if err != nil {
		t.Fatalf("LoadSkin error: %v", err)
	}
	if s.Name != "paper" {
		t.Fatalf("name = %q, want file base", s.Name)
	}
	if s.Colors.Text != "#111111" || s.Colors.StatusBg != "#eeeeee" {
		t.Fatalf("colors not decoded: %+v", s.Colors)
	}
}

func TestLoadSkin_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSkin(t, dir, "bad.yml", "colors:\n  accent: yellow\n")
	writeSkin(t, dir, "broken.toml", "[colors\n")

	if _, err := LoadSkin("missing", dir); !errors.Is(err, ErrSkinNotFound) {
		t.Fatalf("missing skin error = %v, want ErrSkinNotFound", err)
	}
	if _, err := LoadSkin("bad", dir); err == nil || !strings.Contains(err.Error(), "hexcolor") {
		t.Fatalf("bad color error = %v", err)
	}
	if _, err := LoadSkin("broken", dir); err == nil || !strings.Contains(err.Error(), "decode skin") {
		t.Fatalf("broken toml error = %v", err)
	}
	if _, err := LoadSkin("../etc", dir); err == nil {
		t.Fatal("path-like skin name should be rejected")
	}
}

func TestNewDashboardModel_SkinOverride(t *testing.T) {
	t.Parallel()

	m := NewDashboardModel(Options{Skin: &Skin{Name: "mine", Colors: SkinColors{Accent: "#abcdef"}}})
	t.Cleanup(m.Close)
	if m.skin.Name != "mine" || m.skin.Colors.Accent != "#abcdef" {
		t.Fatalf("skin = %+v", m.skin)
	}
	if m.skin.Colors.Title != DefaultSkin().Colors.Title {
		t.Fatal("unset skin colors should fall back to defaults")
	}
}
