package bootstrap

import (
	"log"
	"time"

	"ai-csvchat-be/internal/config"
	"ai-csvchat-be/internal/controller"
	"ai-csvchat-be/internal/pkg/logger"
	"ai-csvchat-be/internal/repository/memory"
	"ai-csvchat-be/internal/service"
	"ai-csvchat-be/pkg/llm/factory"
)

type Container struct {
	SessionController controller.ISessionController
	Logger            logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Inference Provider
	// A missing API key fails here, at startup, not on the first request.
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Gemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.App.SessionTTLMinutes) * time.Minute)
	if cfg.App.SessionTTLMinutes == 0 {
		log.Println("[WARN] SESSION_TTL_MINUTES=0: sessions never expire, memory grows with each upload")
	}

	// 4. Services & Controllers
	sessionService := service.NewSessionService(sessionRepo, llmProvider, cfg.Ai.LLMModel, sysLogger)

	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		Logger:            sysLogger,
	}
}
