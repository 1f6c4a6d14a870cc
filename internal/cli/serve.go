package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"srtran/internal/api"
	"srtran/internal/translate"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the subtitle translation HTTP service",
	Long: `Run an HTTP service that accepts SRT uploads on /api/translate and
responds with the translated file. This is the web-facing counterpart
of the translate command.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("bind", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	bind, _ := cmd.Flags().GetString("bind")
	if bind == "" {
		bind = cfg.Server.Bind
	}

	translator, err := translate.Factory(
		translate.Provider(cfg.Translator.Provider),
		translate.Options{Delay: cfg.Delay()},
	)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	srv := &http.Server{
		Addr:              bind,
		Handler:           api.NewRouter(cfg, logger, translator),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("HTTP server listening", "addr", bind)
		if err := srv.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Infow("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
