package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/de-tools/order-calc/pkg/server"
	"github.com/de-tools/order-calc/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the order price calculator API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a settings file (yaml, json or toml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	profiles, err := config.NewProfileRegistry(settings.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to create tax profile registry: %w", err)
	}

	available, err := profiles.GetProfiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read tax profiles: %w", err)
	}
	logger.Info().Msgf("Tax profiles at `%s` loaded, %d found.", settings.ProfilesPath, len(available))
	for _, profile := range available {
		logger.Info().Msgf("Name: `%s`, Rate: %v%%", profile.Name, profile.TaxPercentage)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	webAPI := server.NewWebAPI(server.Config{
		Addr: settings.Server.Addr(),
		Dependencies: server.Dependencies{
			Profiles: profiles,
			Logger:   logger,
		},
	})

	return webAPI.Start(logger.WithContext(ctx))
}
