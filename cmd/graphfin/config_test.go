package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCLIConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadCLIConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Skin)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, registry.FraudReduction, cfg.initialState().ActiveTab)
	assert.False(t, cfg.initialState().ShowCode)
	assert.Equal(t, "graphfin.html", cfg.ExportPath)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".config", "graphfin"), cfg.ConfigDir)
}

func TestLoadCLIConfig_File(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "start-tab: marketAdoption\nshow-code: true\nlocale: de\nreverse-scroll-wheel: true\nlog-level: debug\n")

	cfg, err := loadCLIConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, registry.MarketAdoption, cfg.initialState().ActiveTab)
	assert.True(t, cfg.ShowCode)
	assert.True(t, cfg.ReverseScrollWheel)
	assert.Equal(t, "1.720", cfg.locale.Number(1720))
	assert.Equal(t, filepath.Dir(path), cfg.ConfigDir)
	assert.Equal(t, "DEBUG", cfg.logLevel.String())
}

func TestLoadCLIConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRAPHFIN_START_TAB", "3")
	path := writeConfig(t, "start-tab: time-efficiency\n")

	cfg, err := loadCLIConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, registry.AdoptionBarriers, cfg.initialState().ActiveTab)
}

func TestLoadCLIConfig_FlagsWin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRAPHFIN_START_TAB", "3")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("tab", "", "")
	flags.Bool("show-code", false, "")
	flags.StringP("output", "o", "", "")
	require.NoError(t, flags.Parse([]string{"--tab", "false-positives", "--show-code", "-o", "out/page.html"}))

	cfg, err := loadCLIConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, registry.FalsePositiveReduction, cfg.initialState().ActiveTab)
	assert.True(t, cfg.initialState().ShowCode)
	assert.Equal(t, "out/page.html", cfg.ExportPath)
}

func TestLoadCLIConfig_UnsetFlagsKeepDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("tab", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := loadCLIConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, registry.FraudReduction, cfg.initialState().ActiveTab)
}

func TestLoadCLIConfig_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := loadCLIConfig(filepath.Join(t.TempDir(), "absent.yml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadCLIConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"tab", "start-tab: nope\n", "invalid start-tab"},
		{"locale", "locale: \"!!\"\n", "invalid locale"},
		{"level", "log-level: loud\n", "invalid log-level"},
		{"yaml", "skin: [unclosed\n", "reading config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			_, err := loadCLIConfig(writeConfig(t, tt.body), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
