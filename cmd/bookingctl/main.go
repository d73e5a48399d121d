package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/config"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "bookingctl",
	Short: "Operate the venue discovery pipeline of the booking CRM",
	Long: `bookingctl runs venue discovery from the command line, lists the venues it
has stored and manages the database schema.

Configuration is read from config/local.env and the environment, the same way
bookingd reads it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads configuration and builds the console logger used by every command.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: "text",
		Output: os.Stderr,
	})
	logging.SetGlobalLogger(logger)
	return cfg, logger.Zerolog(), nil
}
