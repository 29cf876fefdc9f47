package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/recipebook"
	"github.com/aretw0/recipebook/internal/config"
	httpAdapter "github.com/aretw0/recipebook/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 5 * time.Second

// Serve loads the recipe books and serves them over HTTP until ctx is cancelled.
func Serve(ctx context.Context, w io.Writer, cfg config.Config, args []string) error {
	files, err := resolveFiles(cfg, args)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return err
	}

	promReg := prometheus.NewRegistry()
	book, _, err := loadBook(cfg, files, recipebook.WithLogger(logger), recipebook.WithMetrics(promReg))
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
	}

	handler := httpAdapter.NewHandler(book.Registry(),
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetrics(promReg),
	)

	printSystemMessage(w, "Serving %d recipe(s) on %s", book.Registry().Len(), ln.Addr())
	return serveOn(ctx, ln, handler, w)
}

func serveOn(ctx context.Context, ln net.Listener, handler http.Handler, w io.Writer) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		printSystemMessage(w, "Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		printSystemMessage(w, "Server stopped gracefully")
		return nil
	}
}
