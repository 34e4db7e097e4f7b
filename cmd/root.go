package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/config"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "abc",
	Short: "Alphabet learning adventure for young kids",
	Long:  "ABC Adventure: swipe through the alphabet, hear each letter and play letter games in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().String("letter", "A", "Letter to start on")
	rootCmd.Flags().Bool("skip-splash", false, "Go straight to the first lesson")

	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(lettersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// addGlobalFlags registers the flags every command understands.
func addGlobalFlags(pf *pflag.FlagSet) {
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/abc/config.toml)")
	pf.String("db", "", "Path to SQLite event database (overrides ABC_DB env var)")
	pf.Bool("verbose", false, "Log at debug level")
	pf.String("log-file", "", `Log file path ("-" disables logging)`)
	pf.String("narrator", "", "Speech backend: auto, command, openai, gemini, silent")
	pf.Bool("mute", false, "Start with sound muted")
	pf.Bool("no-music", false, "Start with background music off")
	pf.Bool("no-collect", false, "Don't record events to the local database")
}

// resolveConfig loads the config file and environment, then applies flags
// the user set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if flags.Changed("narrator") {
		cfg.Narrator.Backend, _ = flags.GetString("narrator")
	}
	if flags.Changed("mute") {
		cfg.Muted, _ = flags.GetBool("mute")
	}
	if noMusic, _ := flags.GetBool("no-music"); noMusic {
		cfg.MusicEnabled = false
	}
	if noCollect, _ := flags.GetBool("no-collect"); noCollect {
		cfg.CollectorEnabled = false
	}
	if p, _ := flags.GetString("db"); p != "" {
		cfg.CollectorPath = p
	}
	if p, _ := flags.GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// newLogger builds a JSON file logger. The TUI owns the terminal, so
// nothing is ever written to stderr.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" || cfg.LogFile == "-" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// resolveDBPath returns the event database path using --db or the config
// file (highest priority), then ABC_DB env var, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.CollectorPath != "" {
		return cfg.CollectorPath, store.EnsureDir(cfg.CollectorPath)
	}
	return store.DefaultDBPath()
}

// openCollector opens the event database and starts a collector session.
// With collection disabled it returns a nil collector, which records nothing.
func openCollector(cfg config.Config, logger *zap.Logger) (*store.Collector, func(), error) {
	if !cfg.CollectorEnabled {
		return nil, func() {}, nil
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("collector opened", zap.String("path", dbPath))
	closeFn := func() {
		if err := st.Close(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}
	return store.NewCollector(st.EventRepo(), logger), closeFn, nil
}
