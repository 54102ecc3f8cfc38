package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/api"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/menu-agent/internal/setup"
	applog "github.com/povarna/generative-ai-agents/menu-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	_ = godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging, stderr only since stdout carries the protocol
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = applog.New(cfg.LogLevel, cfg.LogFormat)
	logger := log.Logger

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	defer deps.Close()

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "menu-agent",
			Version: api.Version,
		}, nil,
	)
	mcpadapter.Register(server, deps.Processor)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		deps.Close()
		os.Exit(1)
	}
}
