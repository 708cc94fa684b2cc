package cmd

import (
	"fmt"
	"os"

	"github.com/bethropolis/files-to-prompt/internal/app"
	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/input"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for files-to-prompt
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files-to-prompt [paths...]",
		Short: "Concatenate a directory full of files into a single prompt",
		Long: `files-to-prompt walks the given files and directories and writes every
selected text file to stdout (or --output) as one prompt.

Hidden files and anything excluded by .gitignore are skipped unless asked
otherwise. Output is plain text by default, or Claude XML (--cxml) or
Markdown fenced code blocks (--markdown). Extra paths are read from stdin
when it is not a terminal, one per line or NUL-separated with --null.`,
		Version:      Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		// main prints the error once
		SilenceErrors: true,
		RunE:          runRoot,
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), viper.New())
	if err != nil {
		return err
	}

	color.NoColor = !(cfg.UseColors || cfg.ColorOutput)

	roots := append([]string(nil), args...)
	stdinPaths, err := readStdinPaths(cmd, cfg.NullSeparator)
	if err != nil {
		return err
	}
	roots = append(roots, stdinPaths...)

	a, err := app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cfg.ConfigFile != "" {
		a.Logger().Info("Using config file %s", cfg.ConfigFile)
	}

	return a.Run(roots)
}

// readStdinPaths returns nothing when stdin is an interactive terminal
func readStdinPaths(cmd *cobra.Command, nul bool) ([]string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !input.IsPiped(f) {
		return nil, nil
	}

	paths, err := input.ReadPaths(in, nul)
	if err != nil {
		return nil, fmt.Errorf("reading paths from stdin: %w", err)
	}
	return paths, nil
}
