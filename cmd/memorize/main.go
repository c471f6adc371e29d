// memorize is a terminal memory game: figures appear in timed waves and the
// player reports how many of each kind they saw.
//
// Usage:
//
//	memorize list                    - List game modes
//	memorize play <static|dynamic>   - Play one mode
//	memorize menu                    - Main menu with settings and scoreboard
//	memorize settings                - Edit the saved settings
//	memorize serve                   - Start SSH server for remote play
//	memorize scores [mode]           - Show high scores and figure accuracy
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.arcade/memorize.db)
//	--config <path>     - Settings file (default: ~/.arcade/configs/memorize.yaml)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memorize/internal/config"
	"github.com/vovakirdan/tui-memorize/internal/core"
	"github.com/vovakirdan/tui-memorize/internal/games/memorize"
	"github.com/vovakirdan/tui-memorize/internal/sound"
	"github.com/vovakirdan/tui-memorize/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagImages    string
	flagSoundFile string
	flagLogLevel  string
	flagLogFile   string
)

// modeIDs maps CLI mode names to game IDs.
var modeIDs = map[string]string{
	"static":  memorize.StaticID,
	"2d":      memorize.StaticID,
	"dynamic": memorize.DynamicID,
	"3d":      memorize.DynamicID,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memorize",
	Short: "MemorizeIT - count the figures before they vanish",
	Long: `MemorizeIT shows waves of figures for a fixed time. When the time is up,
enter how many of each figure you saw.

Available commands:
  list      - Show the game modes
  play      - Play a mode directly
  menu      - Main menu with settings and scoreboard
  settings  - Edit the saved settings
  serve     - Start SSH server for remote play
  scores    - View high scores

Examples:
  memorize list
  memorize play static
  memorize play dynamic --seed 42
  memorize menu
  memorize serve --ssh :2222
  memorize scores dynamic`,
}

func init() {
	config.LoadEnv()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", config.GetEnvInt(config.EnvFPS, 60), "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.GetEnv(config.EnvDB, "~/.arcade/memorize.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.GetEnv(config.EnvConfig, ""), "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagImages, "images", config.GetEnv(config.EnvImages, ""), "Directory of images mixed into static rounds")
	rootCmd.PersistentFlags().StringVar(&flagSoundFile, "sound-file", config.GetEnv(config.EnvSound, ""), "WAV file played on every wave (default: a short beep)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", config.GetEnv(config.EnvLog, ""), "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the logger for the command. Terminal commands log nowhere
// unless --log-file is set, since stderr shares the alternate screen.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w, closeFn = f, func() { f.Close() } //nolint:errcheck
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "memorize",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, closeFn
}

// loadSettings reads the settings, falling back to defaults with a warning.
func loadSettings(logger *log.Logger) config.Settings {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		logger.Warn("settings unavailable", "err", err)
	}
	return settings
}

// imageDir resolves the images directory: flag or env, then settings.
func imageDir(s config.Settings) string {
	if flagImages != "" {
		return flagImages
	}
	return s.Images
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database; play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		return nil
	}
	return store
}

// newSound returns the wave cue player.
func newSound(logger *log.Logger) *sound.Player {
	return sound.NewPlayer(flagSoundFile, logger)
}

// saveSettings persists settings edited on the settings screen.
func saveSettings(s config.Settings) error {
	return config.Save(flagConfig, s)
}
