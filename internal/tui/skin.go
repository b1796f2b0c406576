package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/graphfin/internal/model"
	"github.com/tinytelemetry/graphfin/internal/render"
)

// ErrSkinNotFound is returned when no skin file matches the requested name.
var ErrSkinNotFound = errors.New("skin not found")

// SkinColors are hex colors. Empty fields keep the default.
type SkinColors struct {
	Title     string `yaml:"title" toml:"title" validate:"omitempty,hexcolor"`
	Text      string `yaml:"text" toml:"text" validate:"omitempty,hexcolor"`
	Muted     string `yaml:"muted" toml:"muted" validate:"omitempty,hexcolor"`
	Accent    string `yaml:"accent" toml:"accent" validate:"omitempty,hexcolor"`
	Border    string `yaml:"border" toml:"border" validate:"omitempty,hexcolor"`
	CodeFg    string `yaml:"code-fg" toml:"code-fg" validate:"omitempty,hexcolor"`
	CodeBg    string `yaml:"code-bg" toml:"code-bg" validate:"omitempty,hexcolor"`
	StatusFg  string `yaml:"status-fg" toml:"status-fg" validate:"omitempty,hexcolor"`
	StatusBg  string `yaml:"status-bg" toml:"status-bg" validate:"omitempty,hexcolor"`
	TabActive string `yaml:"tab-active" toml:"tab-active" validate:"omitempty,hexcolor"`
}

// Skin is a named color scheme loaded from the skins directory.
type Skin struct {
	Name   string     `yaml:"name" toml:"name"`
	Colors SkinColors `yaml:"colors" toml:"colors"`
}

// DefaultSkin is the built-in dark scheme.
func DefaultSkin() Skin {
	p := render.DefaultPalette()
	return Skin{
		Name: model.DefaultSkin,
		Colors: SkinColors{
			Title:     string(p.Title),
			Text:      string(p.Text),
			Muted:     string(p.Muted),
			Accent:    string(p.Accent),
			Border:    string(p.Border),
			CodeFg:    string(p.CodeFg),
			CodeBg:    string(p.CodeBg),
			StatusFg:  "#ffffff",
			StatusBg:  "#1e3a5f",
			TabActive: "#8884d8",
		},
	}
}

// Palette is the chart-facing subset of the skin.
func (s Skin) Palette() render.Palette {
	return render.Palette{
		Title:  lipgloss.Color(s.Colors.Title),
		Text:   lipgloss.Color(s.Colors.Text),
		Muted:  lipgloss.Color(s.Colors.Muted),
		Accent: lipgloss.Color(s.Colors.Accent),
		Border: lipgloss.Color(s.Colors.Border),
		CodeFg: lipgloss.Color(s.Colors.CodeFg),
		CodeBg: lipgloss.Color(s.Colors.CodeBg),
	}.Merge(render.DefaultPalette())
}

// merge fills empty colors of s from base.
func (s Skin) merge(base Skin) Skin {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	c, b := s.Colors, base.Colors
	s.Colors = SkinColors{
		Title:     pick(c.Title, b.Title),
		Text:      pick(c.Text, b.Text),
		Muted:     pick(c.Muted, b.Muted),
		Accent:    pick(c.Accent, b.Accent),
		Border:    pick(c.Border, b.Border),
		CodeFg:    pick(c.CodeFg, b.CodeFg),
		CodeBg:    pick(c.CodeBg, b.CodeBg),
		StatusFg:  pick(c.StatusFg, b.StatusFg),
		StatusBg:  pick(c.StatusBg, b.StatusBg),
		TabActive: pick(c.TabActive, b.TabActive),
	}
	if s.Name == "" {
		s.Name = base.Name
	}
	return s
}

var (
	skinMu      sync.RWMutex
	currentSkin = DefaultSkin()
)

// CurrentSkin returns the skin set by InitializeSkin.
func CurrentSkin() Skin {
	skinMu.RLock()
	defer skinMu.RUnlock()
	return currentSkin
}

// InitializeSkin loads the named skin from <configDir>/skins and makes it the
// default for new dashboards. On error the current skin is kept.
func InitializeSkin(name, configDir string) error {
	s, err := LoadSkin(name, configDir)
	if err != nil {
		return err
	}
	skinMu.Lock()
	currentSkin = s
	skinMu.Unlock()
	return nil
}

// LoadSkin finds <configDir>/skins/**/<name>.{yml,yaml,toml} and decodes it
// on top of the default skin. The empty name and "default" return the
// built-in skin without touching the filesystem.
func LoadSkin(name, configDir string) (Skin, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == model.DefaultSkin {
		return DefaultSkin(), nil
	}
	if strings.ContainsAny(name, `/\*?[{`) {
		return Skin{}, fmt.Errorf("invalid skin name %q", name)
	}

	fsys := os.DirFS(filepath.Join(configDir, "skins"))
	matches, err := doublestar.Glob(fsys, "**/"+name+".{yml,yaml,toml}")
	if err != nil {
		return Skin{}, fmt.Errorf("search skins: %w", err)
	}
	if len(matches) == 0 {
		return Skin{}, fmt.Errorf("%w: %s", ErrSkinNotFound, name)
	}
	return readSkin(fsys, matches[0])
}

func readSkin(fsys fs.FS, file string) (Skin, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Skin{}, fmt.Errorf("read skin %s: %w", file, err)
	}

	var s Skin
	switch path.Ext(file) {
	case ".toml":
		err = toml.Unmarshal(data, &s)
	default:
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return Skin{}, fmt.Errorf("decode skin %s: %w", file, err)
	}
	if err := validator.New().Struct(s); err != nil {
		return Skin{}, fmt.Errorf("skin %s: %w", file, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	return s.merge(DefaultSkin()), nil
}
