package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pagehttp "github.com/fwojciec/pagetext/http"
)

// Run serves the Azure Functions custom handler. The Functions host forwards
// HTTP triggers to /api/<function name> on the assigned port.
func (c *AzureCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/api/", pagehttp.NewHandler(deps.Service, deps.Logger))

	srv := &http.Server{
		Addr:              net.JoinHostPort("", c.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		deps.Logger.Info("azure custom handler listening", "port", c.Port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
