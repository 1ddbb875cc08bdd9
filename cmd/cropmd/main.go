package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agritalk/cropmd/internal/app"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		logLevel   string
		driver     string
		dsn        string
	)

	cmd := &cobra.Command{
		Use:   "cropmd",
		Short: "CropMD web app",
		Long: `CropMD helps farmers look after their crops.

It serves the dashboard, account screens and the review screen,
keeping the reviews in the configured storage (memory, sqlite, postgres or redis).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}

			// Flags that were given win over the file and the environment.
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("storage") {
				cfg.Storage.Driver = driver
			}
			if flags.Changed("dsn") {
				cfg.Storage.DSN = dsn
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "cropmd.yaml", "Config file path (YAML)")
	cmd.Flags().StringVar(&addr, "addr", "", "Address to listen to")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&driver, "storage", "", "Where reviews are kept (memory, sqlite, postgres, redis)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "sqlite file, postgres connection string or redis:// URL")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("cropmd version %s\n", Version)
		},
	})

	return cmd
}

func run(cfg app.Config) error {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := app.Start(ctx, cfg)
	if err != nil {
		slog.Error("failed to start server", "error", err)
		return err
	}

	slog.Info("server started", "addr", "http://"+server.Config.Addr, "storage", cfg.Storage.Driver)

	shutdown := make(chan os.Signal, 2)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	for {
		sig := <-shutdown
		switch sig {
		case os.Interrupt, syscall.SIGTERM:
			cancel()
			shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutCancel()

			if err := server.Stop(shutCtx); err != nil {
				slog.Error("failed to shut safely", "error", err)
				return err
			}

			return nil
		default:
			slog.Warn("unhandled signal", "signal", sig.String())
		}
	}
}
