package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bookline/mail-relay/pkg/api"
	"github.com/bookline/mail-relay/pkg/audit"
	"github.com/bookline/mail-relay/pkg/config"
	"github.com/bookline/mail-relay/pkg/mail"
	"github.com/bookline/mail-relay/pkg/relay"
	"github.com/bookline/mail-relay/pkg/system"
	"github.com/bookline/mail-relay/pkg/telemetry"
)

var (
	debug      bool
	configPath string
)

func main() {
	root := &cobra.Command{
		Use:          "mailrelay",
		Short:        "Booking-confirmation email relay",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug level logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (optional)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the relay HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(system.Version)
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() error {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	zl := setupLogger(debug)
	defer func() { _ = zl.Sync() }()
	log := zl.Sugar()
	log.With("version", system.Version).Info("Starting mail relay")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading mail relay config: %w", err)
	}

	if debug {
		log.Infof("%#v", cfg)
	}

	ctx := context.Background()

	_, shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, system.Version, log)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			log.Warnw("Error shutting down tracer provider", "error", err)
		}
	}()

	auditSvc, err := audit.NewService(cfg.Audit, zl)
	if err != nil {
		return fmt.Errorf("initializing audit trail: %w", err)
	}
	defer func() {
		if err := auditSvc.Close(); err != nil {
			log.Warnw("Error closing audit sink", "error", err)
		}
	}()

	sender := mail.NewSender(log)
	server := api.NewServer(zl, cfg, debug)

	if err := server.RegisterAll([]api.APIController{
		relay.NewController(log, sender, auditSvc),
	}); err != nil {
		return fmt.Errorf("registering relay controllers: %w", err)
	}

	log.Infow("Listening", "address", cfg.Server.ListenAddress)
	return server.Listen()
}

func setupLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	// Disable automatic stacktraces for non-fatal levels to avoid noisy traces in WARN/INFO logs
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339))
	}
	cfg.EncoderConfig.TimeKey = "ts"
	logger, err := cfg.Build()
	if err != nil {
		stdlog.Fatalf("failed to set up logger: %v", err)
	}
	return logger
}
