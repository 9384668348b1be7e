package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"docchat/internal/app"
	"docchat/internal/config"
	"docchat/internal/kb"
	"docchat/internal/llm"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		listenAddr string
	)

	cmd := &cobra.Command{
		Use:          "docchat",
		Short:        "Chat with a single uploaded PDF or text document",
		SilenceUsage: true,
		Long: `docchat serves an HTTP API that accepts one PDF or TXT document,
splits it into overlapping word chunks and answers questions about it
using keyword retrieval and an OpenRouter-hosted model.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			return serve(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to an optional YAML config file")
	cmd.Flags().StringVar(&listenAddr, "addr", "", "listen address, overrides LISTEN_ADDR")
	return cmd
}

func serve(cfg *config.Config) error {
	client, err := llm.New(llm.Config{
		APIKey:      cfg.OpenRouterAPIKey,
		BaseURL:     cfg.LLMBaseURL,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.LLMTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	a, err := app.New(cfg, kb.NewMemoryStore(), client)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	if err := a.Init(); err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	log.Printf("Model: %s", cfg.LLMModel)
	log.Printf("Chunking: %d words, %d overlap", cfg.ChunkSize, cfg.ChunkOverlap)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	return a.Run(ctx)
}
