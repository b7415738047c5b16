package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/proxy"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  proxy.Config
	Service pagetext.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	UserAgent string        `name:"user-agent" env:"PAGETEXT_USER_AGENT" help:"User-Agent header for outbound requests (default: desktop Chrome)"`
	Timeout   time.Duration `short:"t" env:"PAGETEXT_TIMEOUT" default:"10s" help:"Fetch timeout per page"`
	Rate      float64       `env:"PAGETEXT_RATE" default:"0" help:"Max requests per second per domain (0 disables)"`
	LogLevel  string        `name:"log-level" env:"PAGETEXT_LOG_LEVEL" enum:"debug,info,warn,error" default:"info" help:"Log level"`
	LogFormat string        `name:"log-format" env:"PAGETEXT_LOG_FORMAT" enum:"text,json" default:"text" help:"Log format"`

	Serve   ServeCmd   `cmd:"" help:"Run the standalone HTTP server"`
	Extract ExtractCmd `cmd:"" help:"Extract content from URLs and print JSON"`
	Lambda  LambdaCmd  `cmd:"" help:"Run as an AWS Lambda function behind API Gateway"`
	Azure   AzureCmd   `cmd:"" help:"Run as an Azure Functions custom handler"`
}

// Config returns the service configuration selected by global flags.
func (c *CLI) Config() proxy.Config {
	cfg := proxy.DefaultConfig()
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	cfg.Rate = c.Rate
	return cfg
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr         string        `env:"PAGETEXT_ADDR" default:":8000" help:"Listen address"`
	ReadTimeout  time.Duration `name:"read-timeout" default:"30s" help:"HTTP server read timeout"`
	WriteTimeout time.Duration `name:"write-timeout" default:"30s" help:"HTTP server write timeout"`
	IdleTimeout  time.Duration `name:"idle-timeout" default:"120s" help:"HTTP server idle timeout"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs to extract"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	Indent      bool     `short:"i" help:"Indent JSON output"`
}

// LambdaCmd is the "lambda" subcommand.
type LambdaCmd struct{}

// AzureCmd is the "azure" subcommand.
type AzureCmd struct {
	Port string `env:"FUNCTIONS_CUSTOMHANDLER_PORT" default:"7071" help:"Port assigned by the Functions host"`
}
