package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"menuboard/internal/config"
	"menuboard/internal/locale"
	"menuboard/internal/schedule"
)

var (
	logger zerolog.Logger
	cfg    *config.Config
	packs  map[string]schedule.Labels

	cfgPath  string
	packName string
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:               "menusched",
	Short:             "Validate and preview restaurant menu schedules",
	Long:              "menusched lints weekly availability schedules in menu documents, previews open/closed state at any instant, and exports an hours overview spreadsheet.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func setup(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger = zerolog.New(output).With().Timestamp().Logger()
	if !debug {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if cfgPath == "" {
		cfgPath = os.Getenv("MENUSCHED_CONFIG")
	}

	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	packs, err = locale.LoadDir(cfg.Locale.Dir)
	if err != nil {
		return fmt.Errorf("load label packs: %w", err)
	}

	if packName == "" {
		packName = cfg.Locale.Default
	}
	return nil
}

func labels() schedule.Labels {
	return locale.Get(packs, packName)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config.yaml (default: $MENUSCHED_CONFIG or configs/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&packName, "locale", "l", "", "label pack name (default from config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(validateCmd, statusCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
