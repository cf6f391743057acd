package cli

import (
	"context"
	"os"

	"vidozet/internal/config"
	"vidozet/internal/diagnostics"
	"vidozet/internal/fetcher"
	"vidozet/internal/logger"
	"vidozet/internal/pipeline"
	"vidozet/internal/summarizer"
	"vidozet/internal/transcriber"
	"vidozet/pkg/executor"
)

// app bundles everything a command needs after wiring.
type app struct {
	cfg          *config.Config
	log          logger.Logger
	exec         executor.Executor
	orchestrator *pipeline.Orchestrator
}

// buildApp loads config, constructs the logger, wires the pipeline, and
// runs the opportunistic tool checks (warnings only).
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, logErr := logger.NewWithFile(cfg.Logging.Level, cfg.Paths.LogDir)
	if logErr != nil {
		log.Warn(ctx, "Log dosyası açılamadı, yalnızca konsola yazılacak: %v", logErr)
	}

	exec := executor.New()
	diagnostics.LogWarnings(ctx, log, diagnostics.Check(cfg, exec))

	orch := pipeline.New(
		cfg,
		log,
		fetcher.New(cfg, exec, log),
		transcriber.New(cfg, exec, log),
		summarizer.New(cfg.Gemini.Model, log),
	)

	return &app{cfg: cfg, log: log, exec: exec, orchestrator: orch}, nil
}

// loadConfig reads the configured file, falling back to defaults when
// the default path does not exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) && configPath == "config.yaml" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// resolveAPIKey applies the precedence flag > environment > config.
func (a *app) resolveAPIKey() string {
	if apiKeyFlag != "" {
		return apiKeyFlag
	}
	if env := os.Getenv("GEMINI_API_KEY"); env != "" {
		return env
	}
	return a.cfg.Gemini.APIKey
}
