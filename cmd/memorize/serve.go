package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memorize/internal/config"
	"github.com/vovakirdan/tui-memorize/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagSessionsPerMn float64
	flagSessionBurst  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MemorizeIT SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the main menu and its own copy
of the settings. Scores are stored per-server (all users share the same
leaderboard). Remote sessions are silent.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  memorize serve                           # Listen on :23234
  memorize serve --ssh :2222               # Listen on port 2222
  memorize serve --host-key ./my_host_key  # Use specific host key
  memorize serve --sessions-per-minute 4   # Throttle reconnects

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", config.GetEnv(config.EnvSSHAddr, defaults.Address), "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().Float64Var(&flagSessionsPerMn, "sessions-per-minute", defaults.SessionsPerMinute, "New sessions allowed per host per minute")
	serveCmd.Flags().IntVar(&flagSessionBurst, "session-burst", defaults.SessionBurst, "New sessions a host may open at once")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	settings := loadSettings(logger)

	cfg := tui.SSHServerConfig{
		Address:           flagSSHAddr,
		HostKeyPath:       flagHostKey,
		DBPath:            flagDBPath,
		IdleTimeout:       time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:          flagFPS,
		Settings:          settings,
		ImageDir:          imageDir(settings),
		SessionsPerMinute: flagSessionsPerMn,
		SessionBurst:      flagSessionBurst,
		Logger:            logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting MemorizeIT SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
