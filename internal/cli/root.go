// Package cli implements the contacts CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/contacts/internal/book"
	"github.com/rcliao/contacts/internal/config"
	"github.com/rcliao/contacts/internal/console"
	"github.com/rcliao/contacts/internal/logging"
	"github.com/rcliao/contacts/internal/store"
)

var (
	configFile string
	promptFlag string
)

// RootCmd is the top-level command. Without a subcommand it starts an
// interactive session.
var RootCmd = &cobra.Command{
	Use:           "contacts",
	Short:         "Personal contact manager",
	Long:          "A small console contact manager. Add, delete, find and show contacts, then save them to a file.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

func init() {
	f := RootCmd.PersistentFlags()
	f.StringVarP(&configFile, "config", "c", "", "Config file (default: ./.contacts.yaml if present)")
	f.StringP("storage", "s", "", "Storage backend: json, yaml, sqlite (default: json)")
	f.String("file", "", "Storage path (default: contacts.json, contacts.yaml or contacts.db)")
	f.String("on-error", "", "Failed command policy: continue or abort (default: continue)")
	f.String("log-level", "", "Log level: debug, info, warn, error (default: warn)")

	RootCmd.Flags().StringVar(&promptFlag, "prompt", "auto", "Show prompts: auto, always, never")
}

// env bundles what every command needs. Callers must call close.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	storage store.Storage
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	s, err := store.Open(cfg.Backend, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("storage opened", zap.String("backend", cfg.Backend), zap.String("path", cfg.Path))

	return &env{cfg: cfg, log: log, storage: s}, nil
}

func (e *env) close() {
	e.storage.Close()
	e.log.Sync()
}

func runShell(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	prompt, err := wantPrompt(promptFlag)
	if err != nil {
		return err
	}

	var ui console.UI = console.New(cmd.InOrStdin(), cmd.OutOrStdout(), book.New(), e.storage, console.Options{
		Prompt:       prompt,
		AbortOnError: e.cfg.OnError == config.OnErrorAbort,
		Log:          e.log,
	})
	return ui.Run(cmd.Context())
}

func wantPrompt(mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, fmt.Errorf("invalid --prompt %q (valid: auto, always, never)", mode)
	}
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}
