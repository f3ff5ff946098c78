package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleetsight/fleetsight/internal/api"
	"github.com/fleetsight/fleetsight/internal/auth"
	"github.com/fleetsight/fleetsight/internal/loader"
	"github.com/fleetsight/fleetsight/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dataset, err := loader.LoadAll(ctx, cfg.Data.FleetPath, cfg.Data.ClosurePath, loader.Options{
			SheetName: cfg.Data.SheetName,
		})
		if err != nil {
			return err
		}
		zap.L().Info("workbooks loaded",
			zap.Int("trips", len(dataset.Trips)),
			zap.Int("closures", len(dataset.Closures)),
		)

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		authSvc, err := auth.NewService(cfg.Auth)
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: api.NewRouter(dataset, st, authSvc, cfg.Auth),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
