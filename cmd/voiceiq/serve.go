package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/HAMZAJAWED12/voiceiq-AI/alignment"
	"github.com/HAMZAJAWED12/voiceiq-AI/analysis"
	"github.com/HAMZAJAWED12/voiceiq-AI/conversation"
	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
	"github.com/HAMZAJAWED12/voiceiq-AI/diarization/pyannote"
	"github.com/HAMZAJAWED12/voiceiq-AI/logger"
	"github.com/HAMZAJAWED12/voiceiq-AI/server"
	"github.com/HAMZAJAWED12/voiceiq-AI/server/endpoint"
	"github.com/HAMZAJAWED12/voiceiq-AI/transcription"
	"github.com/HAMZAJAWED12/voiceiq-AI/transcription/whisper"
	"github.com/HAMZAJAWED12/voiceiq-AI/version"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis service",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *AppConfig) error {
	logger.Init(cfg.Logging)
	log := logger.WithComponent("main")
	log.Info("starting voiceiq", logger.Fields(
		"version", version.Short(),
		"environment", cfg.Base.Environment,
	))

	transcriber, diarizer, err := buildProviders(cfg)
	if err != nil {
		return err
	}

	svc := buildAnalysisService(cfg)

	srv := server.New(cfg.Server, logger.GetGlobalLogger())
	srv.ApplyMiddleware()

	engine := srv.GinEngine()
	engine.GET("/health", endpoint.Health(serviceName, transcriber, diarizer))
	engine.GET("/info", endpoint.Info(serviceName))

	processHandler := endpoint.NewProcessHandler(transcriber, diarizer, svc, cfg.Upload)
	engine.POST("/v1/process-audio", processHandler.Handle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// buildProviders creates the transcription and diarization backends
// through their registries.
func buildProviders(cfg *AppConfig) (transcription.Provider, diarization.Provider, error) {
	asrRegistry := transcription.NewRegistry()
	asrRegistry.RegisterFactory(whisper.ProviderName, whisper.Factory())

	transcriber, err := asrRegistry.Create(whisper.ProviderName, map[string]any{
		"base_url": cfg.Whisper.BaseURL,
		"model":    cfg.Whisper.Model,
		"language": cfg.Whisper.Language,
		"timeout":  cfg.Whisper.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create transcription provider: %w", err)
	}
	asrRegistry.Set(whisper.ProviderName, transcriber)

	diarRegistry := diarization.NewRegistry()
	diarRegistry.RegisterFactory(pyannote.ProviderName, pyannote.Factory())

	diarizer, err := diarRegistry.Create(pyannote.ProviderName, map[string]any{
		"base_url": cfg.Pyannote.BaseURL,
		"timeout":  cfg.Pyannote.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create diarization provider: %w", err)
	}
	diarRegistry.Set(pyannote.ProviderName, diarizer)

	return transcriber, diarizer, nil
}

func buildAnalysisService(cfg *AppConfig) *analysis.Service {
	var alignOpts []alignment.Option
	if cfg.Pipeline.MergeGap > 0 {
		alignOpts = append(alignOpts, alignment.WithMaxGap(cfg.Pipeline.MergeGap))
	}
	var convOpts []conversation.Option
	if cfg.Pipeline.TurnGap > 0 {
		convOpts = append(convOpts, conversation.WithTurnGap(cfg.Pipeline.TurnGap))
	}
	return analysis.NewService(
		analysis.WithAligner(alignment.NewAligner(alignOpts...)),
		analysis.WithBuilder(conversation.NewBuilder(convOpts...)),
	)
}
