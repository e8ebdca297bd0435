package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jollyjumper/internal/config"
)

// execute runs the root command with args in an empty home and working
// directory, so only built-in defaults are found.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	// Flag variables outlive a single Execute.
	flagDifficulty, flagFormat, flagConfig = "", "yaml", ""
	flagDefaults = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--log-level", "error"))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandYAML(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	var cfg config.JollyConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.DefaultJollyConfig(), cfg)
}

func TestConfigCommandTOMLWithPreset(t *testing.T) {
	out, err := execute(t, "config", "--format", "toml", "--difficulty", "fixed")
	require.NoError(t, err)

	var cfg config.JollyConfig
	_, err = toml.Decode(out, &cfg)
	require.NoError(t, err)
	assert.False(t, cfg.Difficulty.Enabled)
}

func TestConfigCommandDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	require.NoError(t, err)

	assert.Equal(t, string(config.DefaultYAML()), out)
	assert.True(t, strings.HasPrefix(out, "#"), "the default file keeps its comments")

	_, err = execute(t, "config", "--defaults", "--format", "toml")
	assert.ErrorContains(t, err, "YAML file only")
}

func TestConfigCommandErrors(t *testing.T) {
	_, err := execute(t, "config", "--format", "json")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "config", "--difficulty", "brutal")
	assert.ErrorContains(t, err, "unknown difficulty")

	_, err = execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".jolly", "jolly.log"), expandHome("~/.jolly/jolly.log"))
	assert.Equal(t, "./jolly.log", expandHome("./jolly.log"))
	assert.Equal(t, "", expandHome(""))
}
