package bootstrap

import (
	"time"

	"guard_server/adapter/out/inference"
	"guard_server/adapter/out/provider"
	"guard_server/config"
	"guard_server/core/port/out"
	"guard_server/core/service/detector"
	"guard_server/core/service/triage"
	"guard_server/pkg/logger"
)

type Dependencies struct {
	Config *config.Config

	// Outbound adapters
	Classifier out.Classifier
	Platform   out.CommentPlatform

	// Services
	TriageService   *triage.Service
	DetectorService *detector.Service
}

// NewDependencies wires outbound adapters and core services.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	classifier, err := newClassifier(cfg)
	if err != nil {
		return nil, err
	}

	platform := provider.NewYouTubeAdapter()

	triageService := triage.NewService(platform, classifier, triage.Options{
		CommentFetchLimit: cfg.CommentFetchLimit,
		ScanConcurrency:   cfg.ScanConcurrency,
	})
	detectorService := detector.NewService(classifier)

	return &Dependencies{
		Config:          cfg,
		Classifier:      classifier,
		Platform:        platform,
		TriageService:   triageService,
		DetectorService: detectorService,
	}, nil
}

// newClassifier picks the classification backend. The dedicated inference
// service wins when configured; the LLM backend is the fallback.
func newClassifier(cfg *config.Config) (out.Classifier, error) {
	if cfg.InferenceURL != "" {
		logger.Info("Using inference service classifier: %s", cfg.InferenceURL)
		timeout := time.Duration(cfg.InferenceTimeoutSec) * time.Second
		return inference.NewModelAdapter(cfg.InferenceURL, timeout), nil
	}

	if cfg.OpenAIAPIKey != "" {
		logger.Info("Using LLM classifier: %s", cfg.LLMModel)
		return inference.NewLLMAdapter(cfg.OpenAIAPIKey, cfg.LLMModel), nil
	}

	return nil, errNoClassifier
}
