package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"inventoryviewer/internal/codec"
	"inventoryviewer/internal/config"
	"inventoryviewer/internal/handler"
	"inventoryviewer/internal/repository/sqlite"
	"inventoryviewer/internal/service"
	"inventoryviewer/internal/watcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type serveFlags struct {
	addr     string
	dbPath   string
	snapshot string
	watch    bool
}

func newServeCmd(global *globalFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the inventory page over HTTP",
		Long: `Serve the inventory page and its exports.

With --snapshot the snapshot is imported before the server starts. With
--watch it is re-imported whenever the file changes; a snapshot that fails
validation is logged and the previous contents stay in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := global.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cfg.Log.BuildLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if path != "" {
				logger.Info("Loaded config", zap.String("path", path), zap.String("summary", cfg.Summary()))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, logger)
		},
	}

	flags.register(cmd)
	return cmd
}

func (f *serveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.addr, "addr", config.DefaultAddr, "HTTP listen address")
	cmd.Flags().StringVar(&f.dbPath, "db", config.DefaultDBPath, "SQLite database path")
	cmd.Flags().StringVar(&f.snapshot, "snapshot", "", "YAML inventory snapshot to import on start")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "re-import the snapshot when it changes")
}

// apply overrides config values with flags the user set explicitly
func (f *serveFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = f.addr
	}
	if cmd.Flags().Changed("db") {
		cfg.Database.Path = f.dbPath
	}
	if cmd.Flags().Changed("snapshot") {
		cfg.Snapshot.Path = f.snapshot
	}
	if cmd.Flags().Changed("watch") {
		cfg.Snapshot.Watch = f.watch
	}
}

func runServe(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("Starting Inventory Viewer", zap.String("version", version))

	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()
	logger.Info("Database opened", zap.String("path", cfg.Database.Path))

	snapshotSvc := service.NewSnapshotService(repo, logger)
	if cfg.Snapshot.Path != "" {
		if _, err := snapshotSvc.ImportFile(ctx, cfg.Snapshot.Path); err != nil {
			return err
		}
	}

	inventorySvc := service.NewInventoryService(repo, service.FieldKeys{
		YearIntroduced:   cfg.Fields.YearIntroduced,
		MeasurementPoint: cfg.Fields.MeasurementPoint,
	}, logger)

	inventoryHandler, err := handler.NewInventoryHandler(inventorySvc, codec.DefaultRegistry(),
		handler.NewRouter(cfg.Server.BaseURL), logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	inventoryHandler.Register(mux)

	server := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: handler.Chain(mux,
			handler.Recover(logger),
			handler.RequestID,
			handler.Logger(logger),
		),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration(),
		WriteTimeout: cfg.Server.WriteTimeout.Duration(),
		IdleTimeout:  cfg.Server.IdleTimeout.Duration(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("url", inventoryHandlerURL(cfg)))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.Snapshot.Watch {
		w := watcher.New(cfg.Snapshot.Path, func(ctx context.Context) {
			if _, err := snapshotSvc.ImportFile(ctx, cfg.Snapshot.Path); err != nil {
				logger.Error("Snapshot re-import failed, keeping previous contents",
					zap.String("path", cfg.Snapshot.Path),
					zap.Error(err))
			}
		}).WithDebounce(cfg.Snapshot.Debounce.Duration()).WithLogger(logger)

		g.Go(func() error {
			if err := w.Watch(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func inventoryHandlerURL(cfg *config.Config) string {
	return handler.NewRouter(cfg.Server.BaseURL).Reverse(handler.RouteInventory)
}
