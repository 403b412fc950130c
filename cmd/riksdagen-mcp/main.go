package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/amrtini/riksdagen-mcp-server/pkg/mcpserver"
	"github.com/amrtini/riksdagen-mcp-server/pkg/riksdagen"
	"github.com/amrtini/riksdagen-mcp-server/pkg/tools"
)

type config struct {
	LogLevel  string           `yaml:"log_level"`
	Riksdagen riksdagen.Config `yaml:"riksdagen"`
}

func loadConfig(path string) (*config, error) {
	cfg := &config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	riksdagen.ApplyEnvDefaults(&cfg.Riksdagen)
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	listen := flag.String("listen", "", "serve streamable HTTP on this address instead of stdio")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// stdout carries the stdio MCP transport, so logs go to stderr.
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		log = log.Level(level)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	client := riksdagen.NewClient(&cfg.Riksdagen)
	server := mcpserver.New(tools.DefaultRegistry(client), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *listen != "" {
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server.MCP()
		}, nil)
		httpServer := &http.Server{Addr: *listen, Handler: handler}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpServer.Shutdown(shutdownCtx)
		}()
		log.Info().Str("addr", *listen).Msg("Serving MCP over streamable HTTP")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	}

	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
