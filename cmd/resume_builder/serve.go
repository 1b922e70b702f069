package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the parser, serializer, repair, diagnosis, chat, field-session and draft endpoints. Without an API key the model-backed endpoints answer 503.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	var client llm.Client
	if c, err := newClient(ctx); err != nil {
		logger.Warn("model endpoints disabled", zap.Error(err))
	} else {
		client = c
		defer func() { _ = c.Close() }()
	}

	port := appConfig.Port
	if servePort != 0 {
		port = servePort
	}

	srv := server.New(server.Config{
		Port:           port,
		CORSOrigin:     appConfig.CORSOrigin,
		RateLimit:      appConfig.RateLimit,
		RateBurst:      appConfig.RateBurst,
		FieldTextLimit: appConfig.FieldTextLimit,
		ParseTextLimit: appConfig.ParseTextLimit,
	}, client, store, logger)

	logger.Info("storage opened", zap.String("driver", appConfig.StorageDriver))
	return srv.Start(ctx)
}
