package gitls

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// ErrUsage is returned when gitls is not called with exactly a summary file
// and a manifest file.
var ErrUsage = errors.New("usage: gitls <summary-file> <manifest-file>")

type CLIConfig struct {
	ConfigPath string
	Verbose    bool
	Color      string
	Clipboard  bool
	Markdown   bool
	Stats      bool
	Completion string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "gitls <summary-file> <manifest-file>",
	Short: "Annotate paths from stdin with their status in a git change summary.",
	Long: `Annotate paths read from stdin with the status they have in a change summary
(created, deleted, renamed or unchanged). Renames are also written to the
manifest file as <from>::<to>::<similarity> lines.

Example: git diff --format= --summary HEAD~ > /tmp/sum; git ls-files | gitls /tmp/sum /tmp/renames`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return writeCompletion(cmd, cfg.Completion, os.Stdout)
		}

		logger := NewLogger(cfg.Verbose)
		err := run(args, logger)
		if err != nil {
			logger.Debug("gitls failed", "err", err)
		}
		return err
	},
}

func run(args []string, logger *slog.Logger) error {
	if len(args) != 2 {
		return ErrUsage
	}

	mode, err := ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}

	appCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := &Options{
		ReportPath:    args[0],
		ManifestPath:  args[1],
		Markdown:      cfg.Markdown,
		FromClipboard: cfg.Clipboard,
		Stats:         cfg.Stats,
		Color:         mode,
	}
	return NewApp(opts, appCfg, logger).Run()
}

var completionScripts = map[string]func(*cobra.Command, io.Writer) error{
	"bash": (*cobra.Command).GenBashCompletion,
	"zsh":  (*cobra.Command).GenZshCompletion,
	"fish": func(c *cobra.Command, w io.Writer) error {
		return c.GenFishCompletion(w, true)
	},
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

// writeCompletion writes the completion script for shell. It is the only
// output besides the annotated stream that goes to stdout.
func writeCompletion(cmd *cobra.Command, shell string, w io.Writer) error {
	gen, ok := completionScripts[shell]
	if !ok {
		return fmt.Errorf("%w: no completion for shell %q", ErrUsage, shell)
	}
	return gen(cmd.Root(), w)
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().StringVarP(&cfg.ConfigPath, "config", "c", "", "Config file (default ~/.config/gitls/config.yaml)")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.Flags().StringVar(&cfg.Color, "color", string(ColorAlways), "Color output: always, auto or never")
	rootCmd.Flags().BoolVarP(&cfg.Clipboard, "clipboard", "p", false, "Read paths from the clipboard instead of stdin")
	rootCmd.Flags().BoolVarP(&cfg.Markdown, "markdown", "m", false, "Read the summary from fenced code blocks of a Markdown file")
	rootCmd.Flags().BoolVarP(&cfg.Stats, "stats", "s", false, "Print a status tally to stderr")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// stdout carries only annotated paths, so --help goes to stderr.
	help := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		c.SetOut(c.ErrOrStderr())
		help(c, args)
	})
}

func Execute() error {
	return rootCmd.Execute()
}
