package main

import (
	"context"
	"log"

	"ai-csvchat-be/internal/bootstrap"
	"ai-csvchat-be/internal/config"
	"ai-csvchat-be/internal/server"
	"ai-csvchat-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 4. Initialize & Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
