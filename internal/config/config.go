package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/printer"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to flag names to form environment variable names
const EnvPrefix = "FILES_TO_PROMPT"

// ErrConflictingFormats is returned when more than one output format is chosen
var ErrConflictingFormats = errors.New("--cxml and --markdown cannot be used together")

// Config holds all application configuration settings
type Config struct {
	// Selection settings
	Extensions      []string
	IncludeHidden   bool
	IgnorePatterns  []string
	IgnoreFilesOnly bool
	IgnoreGitignore bool

	// Output settings
	ClaudeXML   bool
	Markdown    bool
	Format      printer.Format
	LineNumbers bool
	OutputFile  string

	// Input settings
	NullSeparator bool

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool // colored diagnostics on stderr
	ColorOutput bool // colored path headers in plain output
	ShowSkipped bool
	ConfigFile  string
}

// Flag names, shared by the flag set, viper keys and environment variables
const (
	FlagExtension       = "extension"
	FlagIncludeHidden   = "include-hidden"
	FlagIgnoreFilesOnly = "ignore-files-only"
	FlagIgnoreGitignore = "ignore-gitignore"
	FlagIgnore          = "ignore"
	FlagOutput          = "output"
	FlagCXML            = "cxml"
	FlagMarkdown        = "markdown"
	FlagLineNumbers     = "line-numbers"
	FlagNull            = "null"
	FlagVerbose         = "verbose"
	FlagQuiet           = "quiet"
	FlagLogLevel        = "log-level"
	FlagNoColor         = "no-color"
	FlagShowSkipped     = "show-skipped"
	FlagConfig          = "config"
)

// RegisterFlags adds every option to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringArrayP(FlagExtension, "e", nil, "File extensions to include (repeatable)")
	fs.Bool(FlagIncludeHidden, false, "Include files and folders starting with .")
	fs.Bool(FlagIgnoreFilesOnly, false, "--ignore option only ignores files")
	fs.Bool(FlagIgnoreGitignore, false, "Ignore .gitignore files and include all files")
	fs.StringArray(FlagIgnore, nil, "List of patterns to ignore (repeatable)")
	fs.StringP(FlagOutput, "o", "", "Output to a file instead of stdout")
	fs.BoolP(FlagCXML, "c", false, "Output in XML-ish format suitable for Claude's long context window")
	fs.BoolP(FlagMarkdown, "m", false, "Output Markdown with fenced code blocks")
	fs.BoolP(FlagLineNumbers, "n", false, "Add line numbers to the output")
	fs.BoolP(FlagNull, "0", false, "Use NUL character as separator when reading from stdin")
	fs.Bool(FlagVerbose, false, "Enable verbose logging (DEBUG and above)")
	fs.Bool(FlagQuiet, false, "Only show errors on stderr")
	fs.String(FlagLogLevel, "warn", "Set the logging level (debug, info, warn, error, none)")
	fs.Bool(FlagNoColor, false, "Disable color output")
	fs.Bool(FlagShowSkipped, false, "List skipped files/directories and reasons at the end")
	fs.String(FlagConfig, "", "Read defaults from a config file (yaml, toml or json)")
}

// Load resolves the configuration from flags, FILES_TO_PROMPT_* environment
// variables and an optional config file, in that order of precedence.
func Load(fs *pflag.FlagSet, v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: binding flags: %w", err)
	}

	if file := v.GetString(FlagConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	c := &Config{
		Extensions:      cleanList(v.GetStringSlice(FlagExtension)),
		IncludeHidden:   v.GetBool(FlagIncludeHidden),
		IgnorePatterns:  cleanList(v.GetStringSlice(FlagIgnore)),
		IgnoreFilesOnly: v.GetBool(FlagIgnoreFilesOnly),
		IgnoreGitignore: v.GetBool(FlagIgnoreGitignore),
		ClaudeXML:       v.GetBool(FlagCXML),
		Markdown:        v.GetBool(FlagMarkdown),
		LineNumbers:     v.GetBool(FlagLineNumbers),
		OutputFile:      v.GetString(FlagOutput),
		NullSeparator:   v.GetBool(FlagNull),
		Verbose:         v.GetBool(FlagVerbose),
		Quiet:           v.GetBool(FlagQuiet),
		LogLevel:        v.GetString(FlagLogLevel),
		NoColor:         v.GetBool(FlagNoColor),
		ShowSkipped:     v.GetBool(FlagShowSkipped),
		ConfigFile:      v.GetString(FlagConfig),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
	c.ColorOutput = !c.NoColor && c.OutputFile == "" && c.Format == printer.FormatPlain &&
		isatty.IsTerminal(os.Stdout.Fd())

	return c, nil
}

// Validate checks option combinations and derives Format
func (c *Config) Validate() error {
	if c.ClaudeXML && c.Markdown {
		return ErrConflictingFormats
	}
	switch {
	case c.ClaudeXML:
		c.Format = printer.FormatClaudeXML
	case c.Markdown:
		c.Format = printer.FormatMarkdown
	default:
		c.Format = printer.FormatPlain
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// EffectiveLogLevel folds --verbose and --quiet into the level name
func (c *Config) EffectiveLogLevel() string {
	switch {
	case c.Verbose:
		return "debug"
	case c.Quiet:
		return "error"
	default:
		return c.LogLevel
	}
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
