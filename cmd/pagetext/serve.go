package main

import (
	"os"
	"os/signal"
	"syscall"

	pagegin "github.com/fwojciec/pagetext/gin"
)

// Run executes the serve command until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := pagegin.ServerConfig{
		Addr:         c.Addr,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
		IdleTimeout:  c.IdleTimeout,
	}

	return pagegin.NewServer(config, deps.Service, deps.Logger).ListenAndServe(ctx)
}
