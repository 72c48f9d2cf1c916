package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mukundan1989/baebyzleep/internal"
	"github.com/mukundan1989/baebyzleep/internal/api"
	"github.com/mukundan1989/baebyzleep/internal/config"
	"github.com/mukundan1989/baebyzleep/internal/session"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "baebyzleep",
		Short:        "Baby Sleep Coach: log sleep and milestones, get an averaged sleep plan",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		addr       string
		configFile string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return Run(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	cmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "path to an optional YAML config file, overrides CONFIG_FILE")
	return cmd
}

// loadConfig reads the file named by --config when given, otherwise the
// shared config from CONFIG_FILE. The result is a copy the caller may modify.
func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.LoadFrom(configFile)
	}
	shared, err := config.Load()
	if err != nil {
		return nil, err
	}
	c := *shared
	return &c, nil
}

// Run serves HTTP and sweeps idle sessions until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context, cfg *config.Config, logger internal.Logger) error {
	sessions := session.NewManager(cfg.SessionIdleTimeout, cfg.SessionSweepInterval, logger)
	app := api.NewApp(logger, cfg, sessions, nil)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      api.NewRouter(app),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sessions.Run(gctx)
	})
	g.Go(func() error {
		logger.Infof("Server running on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
