package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	apiserver "github.com/robotnik-ag/robotnik/internal/api_server"
	"github.com/robotnik-ag/robotnik/internal/config"
	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/events"
	"github.com/robotnik-ag/robotnik/internal/service"
	"github.com/robotnik-ag/robotnik/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the RobotNik api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
		defer func() { _ = logger.Sync() }()

		zap.S().Info("Starting API service...")
		defer zap.S().Info("API service stopped")

		catalog, err := newCatalog(cfg)
		if err != nil {
			zap.S().Fatalw("loading profiles", "error", err)
		}
		zap.S().Infow("profiles loaded", "profiles", catalog.Names(), "default", catalog.Fallback())

		var (
			estimationOpts []service.EstimationOption
			waitlistOpts   []service.WaitlistOption
		)
		if cfg.Events.Enabled {
			producer := events.NewEventProducer(&events.StdoutWriter{}, events.WithOutputTopic(cfg.Events.Topic))
			defer func() { _ = producer.Close() }()

			estimationOpts = append(estimationOpts, service.WithEstimationEvents(producer))
			waitlistOpts = append(waitlistOpts, service.WithWaitlistEvents(producer))
		}

		estimationSrv := service.NewEstimationService(catalog, estimationOpts...)
		waitlistSrv := service.NewWaitlistService(newNotifier(cfg), waitlistOpts...)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			server := apiserver.New(cfg, listener, estimationSrv, waitlistSrv)
			if err := server.Run(ctx); err != nil {
				zap.S().Fatalw("Error running server", "error", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener, catalog)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Fatalw("failed to run metrics server", "error", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func newCatalog(cfg *config.Config) (*estimation.Catalog, error) {
	profiles := estimation.DefaultCatalog().Profiles()
	if cfg.Estimate.ProfileFile != "" {
		loaded, err := estimation.LoadProfiles(cfg.Estimate.ProfileFile)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, loaded...)
	}
	return estimation.NewCatalog(cfg.Estimate.Profile, profiles...)
}

func newNotifier(cfg *config.Config) service.Notifier {
	if cfg.Notify.WebhookURL == "" {
		zap.S().Info("no notification webhook configured, waitlist signups are only logged")
		return service.NewLogNotifier()
	}
	return service.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Timeout, cfg.Notify.MaxRetries)
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
