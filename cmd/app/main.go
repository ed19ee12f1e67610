package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/sleeplog/internal/config"
	"github.com/akyairhashvil/sleeplog/internal/repository"
	"github.com/akyairhashvil/sleeplog/internal/store"
	"github.com/akyairhashvil/sleeplog/internal/tui"
	"github.com/akyairhashvil/sleeplog/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("sleeplog needs an interactive terminal")

// RootOptions holds the flags that override the config file.
type RootOptions struct {
	ConfigPath string
	DataDir    string
	Backend    string
	LogLevel   string
	Theme      string
}

type runFunc func(ctx context.Context, cfg config.Config) error

func main() {
	if err := newRootCmd(runTracker).ExecuteContext(context.Background()); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(run runFunc) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Keep a log of how you slept",
		Long:          "Record nightly sleep quality, hours and dream notes, and watch the trend.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", config.DefaultPath(), "path to config file")
	cmd.Flags().StringVar(&opts.DataDir, "data-dir", "", "directory for entries and logs")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "storage backend (sqlite|json)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme (default|dracula)")

	return cmd
}

// loadConfig applies flags the user set on top of the file and environment.
func loadConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = opts.DataDir
	}
	if flags.Changed("backend") {
		cfg.Backend = opts.Backend
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.Theme
	}
	return cfg, cfg.Validate()
}

func runTracker(ctx context.Context, cfg config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	log, err := util.NewLogger(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		util.LogError(log, "close store", st.Close())
	}()

	repo := repository.New(st, log)
	model := tui.NewMainModel(ctx, repo, log, tui.Options{Theme: tui.ThemeByName(cfg.Theme)})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
