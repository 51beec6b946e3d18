package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
)

// Run maps the routes, serves until SIGINT or SIGTERM, then drains in-flight
// requests for at most the shutdown timeout.
func (srv *HTTPServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv.mapHandlers()

	hs := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	srv.l.Infof(ctx, "HTTP server started on %s", hs.Addr)

	select {
	case err, ok := <-errCh:
		if ok {
			srv.l.Errorf(ctx, "internal.httpserver.Run: %v", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Stopping users service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(shutdownCtx, "internal.httpserver.Run.Shutdown: %v", err)
		return err
	}
	return nil
}
