package main

import (
	"fmt"
	"net"
	"os"
	_ "time/tzdata"

	"github.com/de-tools/order-reports/pkg/format"
	"github.com/de-tools/order-reports/pkg/server"
	"github.com/de-tools/order-reports/pkg/services/config"
	"github.com/de-tools/order-reports/pkg/services/export"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report export web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (REPORTS_* environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	locale, err := settings.Locale.Locale()
	if err != nil {
		return fmt.Errorf("failed to resolve locale: %w", err)
	}

	store, err := config.NewDestination(ctx, settings.Output)
	if err != nil {
		return fmt.Errorf("failed to configure export destination: %w", err)
	}

	logger.Info().
		Str("locale", locale.String()).
		Str("store", store.String()).
		Msg("configuration loaded")

	if settings.Server.Host == "" || settings.Server.Port == "" {
		return fmt.Errorf("missing server host or port")
	}
	addr := net.JoinHostPort(settings.Server.Host, settings.Server.Port)

	api := server.NewWebAPI(server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Registry:  export.DefaultRegistry(),
			Formatter: format.New(locale),
			Store:     store,
			Logger:    logger,
		},
	})

	return api.Start()
}
