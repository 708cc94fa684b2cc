package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/files-to-prompt/internal/printer"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return Load(fs, viper.New())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Empty(t, cfg.Extensions)
	assert.Empty(t, cfg.IgnorePatterns)
	assert.False(t, cfg.IncludeHidden)
	assert.False(t, cfg.IgnoreGitignore)
	assert.Equal(t, printer.FormatPlain, cfg.Format)
	assert.Equal(t, "warn", cfg.EffectiveLogLevel())
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t,
		"-e", "py", "--extension", "md",
		"--ignore", "*.log", "--ignore", "build",
		"--include-hidden", "--ignore-files-only", "--ignore-gitignore",
		"-m", "-n", "-0", "-o", "out.md",
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"py", "md"}, cfg.Extensions)
	assert.Equal(t, []string{"*.log", "build"}, cfg.IgnorePatterns)
	assert.True(t, cfg.IncludeHidden)
	assert.True(t, cfg.IgnoreFilesOnly)
	assert.True(t, cfg.IgnoreGitignore)
	assert.Equal(t, printer.FormatMarkdown, cfg.Format)
	assert.True(t, cfg.LineNumbers)
	assert.True(t, cfg.NullSeparator)
	assert.Equal(t, "out.md", cfg.OutputFile)
	assert.False(t, cfg.ColorOutput)
}

func TestLoad_PatternsKeepCommas(t *testing.T) {
	cfg, err := load(t, "--ignore", "a,b.txt", "--ignore", "{x,y}.md", "-e", "tar,gz")
	require.NoError(t, err)
	assert.Equal(t, []string{"a,b.txt", "{x,y}.md"}, cfg.IgnorePatterns)
	assert.Equal(t, []string{"tar,gz"}, cfg.Extensions)
}

func TestLoad_ConflictingFormats(t *testing.T) {
	_, err := load(t, "--cxml", "--markdown")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictingFormats)
}

func TestLoad_BadLogLevel(t *testing.T) {
	_, err := load(t, "--log-level", "chatty")
	assert.Error(t, err)
}

func TestLoad_EnvironmentAndFlagPrecedence(t *testing.T) {
	t.Setenv("FILES_TO_PROMPT_CXML", "true")
	t.Setenv("FILES_TO_PROMPT_INCLUDE_HIDDEN", "true")
	t.Setenv("FILES_TO_PROMPT_LOG_LEVEL", "error")

	cfg, err := load(t, "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, printer.FormatClaudeXML, cfg.Format)
	assert.True(t, cfg.IncludeHidden)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("markdown: true\nextension: [go, mod]\nline-numbers: true\n"), 0o644))

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, printer.FormatMarkdown, cfg.Format)
	assert.Equal(t, []string{"go", "mod"}, cfg.Extensions)
	assert.True(t, cfg.LineNumbers)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEffectiveLogLevel(t *testing.T) {
	assert.Equal(t, "debug", (&Config{Verbose: true, Quiet: true, LogLevel: "warn"}).EffectiveLogLevel())
	assert.Equal(t, "error", (&Config{Quiet: true, LogLevel: "warn"}).EffectiveLogLevel())
	assert.Equal(t, "info", (&Config{LogLevel: "info"}).EffectiveLogLevel())
}
