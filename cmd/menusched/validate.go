package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"menuboard/internal/config"
	"menuboard/internal/menu"
	"menuboard/internal/metrics"
	"menuboard/internal/schedule"
)

var watch bool

var validateCmd = &cobra.Command{
	Use:   "validate <menu.json> [menu.json ...]",
	Short: "Check every schedule in the given menu documents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-validate on file change and serve metrics")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if !watch {
		invalid := 0
		for _, path := range args {
			n, err := lintDocument(path)
			if err != nil {
				return err
			}
			invalid += n
		}
		if invalid > 0 {
			return fmt.Errorf("%d schedule(s) with errors", invalid)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()
	go startMetricsServer(ctx, cfg.Monitoring.MetricsPort, &logger)

	for _, path := range args {
		path := path
		if _, err := lintDocument(path); err != nil {
			logger.Error().Err(err).Str("file", path).Msg("initial validation failed")
		}
		go func() {
			err := config.WatchFile(ctx, path, cfg.WatchInterval(), func() {
				if _, err := lintDocument(path); err != nil {
					logger.Error().Err(err).Str("file", path).Msg("validation failed")
				}
			})
			if err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Str("file", path).Msg("watch stopped")
			}
		}()
	}

	logger.Info().Int("files", len(args)).Msg("watching for schedule changes")
	<-ctx.Done()
	return nil
}

// lintDocument validates every schedule in one menu document and
// returns how many entities had errors.
func lintDocument(path string) (int, error) {
	doc, err := menu.Load(path)
	if err != nil {
		return 0, err
	}

	invalid := 0
	invalid += lintEntity(path, "restaurant", doc.Restaurant.Name, doc.Restaurant.Hours)
	for _, c := range doc.Categories {
		invalid += lintEntity(path, "category", c.Name, c.Hours)
	}
	for _, it := range doc.Items {
		invalid += lintEntity(path, "item", it.Name, it.Hours)
	}

	if invalid == 0 {
		logger.Info().Str("file", path).Msg("all schedules valid")
	}
	return invalid, nil
}

func lintEntity(path, kind, name string, hours schedule.Weekly) int {
	if hours == nil {
		return 0
	}

	res := schedule.Validate(hours)
	metrics.IncValidation(res.OK())
	if res.OK() {
		return 0
	}

	logger.Warn().
		Str("file", path).
		Str(kind, name).
		Msg(res.Summary)
	for _, d := range schedule.Weekdays() {
		for _, issue := range res.PerDay[d] {
			logger.Warn().Str("day", d.String()).Msg(issue.Message)
		}
	}
	return 1
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info().Int("port", port).Msg("metrics server started")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
