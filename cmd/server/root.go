package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sebasr/information-service/internal/config"
	"github.com/sebasr/information-service/internal/database"
	"github.com/sebasr/information-service/internal/logging"
	"github.com/sebasr/information-service/internal/repository"
	"github.com/sebasr/information-service/internal/server"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "information-service",
		Short:         "Serves information records for contract testing",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, logging.NewLogger(cfg.Logging.Level))
		},
	}

	cmd.Flags().String("port", "", "Port for the HTTP server (env: PORT)")
	cmd.Flags().String("log-level", "", "Logging level: trace, debug, info, warn, error (env: LOG_LEVEL)")
	cmd.Flags().Bool("legacy-shared-record", false,
		"Keep one process-wide record rewritten by every request (env: INFORMATION_LEGACY_SHARED_RECORD)")
	cmd.Flags().Bool("audit", false, "Record lookups in PostgreSQL (env: AUDIT_ENABLED)")

	return cmd
}

// loadConfig reads the environment and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("port") {
		cfg.Server.Port, _ = fs.GetString("port")
	}
	if fs.Changed("log-level") {
		level, _ := fs.GetString("log-level")
		cfg.Logging.Level = strings.ToLower(level)
	}
	if fs.Changed("legacy-shared-record") {
		cfg.Information.LegacySharedRecord, _ = fs.GetBool("legacy-shared-record")
	}
	if fs.Changed("audit") {
		cfg.Audit.Enabled, _ = fs.GetBool("audit")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// run serves until ctx is cancelled, then shuts down gracefully
func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	deps := &server.Dependencies{
		Config: cfg,
		Logger: log,
	}

	if cfg.Audit.Enabled {
		db, err := database.New(ctx, &cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.WithError(err).Error("error closing database")
			}
		}()

		lookupRepo := repository.NewPostgresLookupRepository(db)
		if err := lookupRepo.EnsureSchema(ctx); err != nil {
			return err
		}

		deps.LookupRepo = lookupRepo
		deps.DBHealth = db
		log.Info("lookup audit log enabled")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.New(deps),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"port":                 cfg.Server.Port,
			"legacy_shared_record": cfg.Information.LegacySharedRecord,
		}).Info("starting server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
