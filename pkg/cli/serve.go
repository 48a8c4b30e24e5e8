package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/healthy-campus/hurs/pkg/cli/config"
	controller "github.com/healthy-campus/hurs/pkg/controller/http"
	"github.com/healthy-campus/hurs/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		storageCfg config.Storage
		rubricCfg  config.Rubric
	)

	flags := joinFlags(
		serverCfg.Flags(),
		storageCfg.Flags(),
		rubricCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the scoring HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting hurs server",
				slog.Any("server", serverCfg),
				slog.Any("storage", storageCfg),
				slog.Any("rubric", rubricCfg),
			)

			rubric, err := rubricCfg.Configure()
			if err != nil {
				return err
			}

			store, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			scoringUC := usecase.NewScoring(rubric, store)
			reportUC := usecase.NewReport(store)

			server := controller.NewServer(ctx, serverCfg.Addr, rubric, scoringUC, reportUC)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
