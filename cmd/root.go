package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/heroes/internal/application"
	"github.com/inovacc/heroes/internal/core"
	"github.com/inovacc/heroes/internal/model"
	"github.com/inovacc/heroes/internal/render"
	"github.com/inovacc/heroes/internal/store"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	cfg    = model.DefaultConfig()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Army preset generator and battle simulator",
	Long: `Heroes generates computer army presets within a point budget and simulates
battles between two armies on a 27x21 field.

Run 'heroes' without arguments in a terminal to enter the interactive menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the ini configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
}

func setup(cmd *cobra.Command, _ []string) error {
	if configPath == "" {
		path, err := application.DefaultConfigPath()
		if err != nil {
			return err
		}

		configPath = path
	}

	loaded, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevel
	}

	if cmd.Flags().Changed("log-format") {
		loaded.Log.Format = logFormat
	}

	l, err := newLogger(loaded.Log, os.Stderr)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	slog.SetDefault(l)

	logger.Debug("configuration loaded", "path", configPath, "backend", cfg.Storage.Backend)

	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if !render.IsTerminal(os.Stdin) || !render.IsTerminal(os.Stdout) {
		return cmd.Help()
	}

	return runMenu(cmd)
}

// newLogger builds the process logger from the log section.
func newLogger(lc model.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level

	if lc.Level != "" {
		if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(lc.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", lc.Format)
	}
}

// openStore opens the configured store. Relative storage paths live next
// to the configuration file.
func openStore() (store.Store, error) {
	dir := filepath.Dir(configPath)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := store.Open(cfg.Storage, dir)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store is not usable: %w", err)
	}

	logger.Debug("store opened", "backend", cfg.Storage.Backend, "dir", dir)

	return db, nil
}

// newRenderer returns a renderer suited to w.
func newRenderer(w io.Writer) *render.Renderer {
	f, ok := w.(*os.File)

	return render.New(noColor || !ok || !render.IsTerminal(f))
}
