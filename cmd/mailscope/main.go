// Mailscope server and pipeline CLI — serves the HTTP API and runs
// pipeline jobs (ingestion, labeling, outbox pushes, extraction) either
// on demand or as the scheduled maintenance sequence.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mailscope/mailscope/pkg/jobs"
	"github.com/mailscope/mailscope/pkg/version"
)

func main() {
	var envFile string

	root := &cobra.Command{
		Use:           version.AppName,
		Short:         "Email intelligence pipeline: ingestion, labeling, retention, extraction",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("Could not load .env file, continuing with existing environment",
					"path", envFile, "error", err)
			}
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the environment file")

	root.AddCommand(serveCmd())
	root.AddCommand(jobCmd())

	if err := root.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.taxo.EnsureSeeded(ctx); err != nil {
				return fmt.Errorf("failed to seed taxonomy: %w", err)
			}
			if err := app.policies.EnsureDefaults(ctx); err != nil {
				return fmt.Errorf("failed to seed policies: %w", err)
			}

			addr := fmt.Sprintf("%s:%d", app.cfg.Server.Host, app.cfg.Server.Port)
			srv := &http.Server{
				Addr:    addr,
				Handler: app.server.Router(),
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("HTTP server listening", "addr", addr, "version", version.Full())
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case <-ctx.Done():
				slog.Info("Shutdown signal received")
			case err := <-errCh:
				return fmt.Errorf("http server failed: %w", err)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Error("HTTP server shutdown error", "error", err)
			}
			slog.Info("Shutdown complete")
			return nil
		},
	}
}

func jobCmd() *cobra.Command {
	kinds := []jobs.Kind{
		jobs.KindIngestFull,
		jobs.KindIngestRefresh,
		jobs.KindClusterLabel,
		jobs.KindLabelIncremental,
		jobs.KindMaintenance,
		jobs.KindLabelPush,
		jobs.KindArchivePush,
		jobs.KindInboxCleanup,
		jobs.KindTrashSync,
		jobs.KindPolicyApply,
		jobs.KindExtractEvents,
		jobs.KindExtractPayments,
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}

	return &cobra.Command{
		Use:       "job <kind>",
		Short:     "Run one pipeline job to completion",
		Long:      "Run one pipeline job to completion. Kinds: " + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.taxo.EnsureSeeded(ctx); err != nil {
				return fmt.Errorf("failed to seed taxonomy: %w", err)
			}
			if err := app.policies.EnsureDefaults(ctx); err != nil {
				return fmt.Errorf("failed to seed policies: %w", err)
			}

			id, err := app.jobSvc.Start(jobs.Kind(args[0]))
			if err != nil {
				return err
			}
			slog.Info("Job started", "job_id", id)

			updates, cancel, err := app.registry.Subscribe(id)
			if err != nil {
				return err
			}
			defer cancel()

			var last jobs.Status
			for st := range updates {
				last = st
				if st.Message != "" {
					slog.Info("Job progress",
						"phase", st.Phase,
						"processed", st.Counters.Processed,
						"failed", st.Counters.Failed,
						"message", st.Message)
				}
			}
			if last.State == jobs.StateFailed {
				return fmt.Errorf("job %s failed: %s", id, last.Message)
			}
			slog.Info("Job finished",
				"job_id", id,
				"state", last.State,
				"processed", last.Counters.Processed,
				"inserted", last.Counters.Inserted,
				"skipped_existing", last.Counters.SkippedExisting,
				"failed", last.Counters.Failed)
			return nil
		},
	}
}
