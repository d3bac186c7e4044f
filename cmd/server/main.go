package main

import (
	"context"
	"log"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pool, err := infra.NewSnapshotsPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("warning: snapshots DB not available: %v", err)
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath)
	processor := usecase.NewProcessor(renderer, cfg.TemplatesDir)
	snapshots := repo.NewSnapshotsRepo(pool)
	aiClient := ai.NewClient(cfg.AIServiceURL)

	app := fiber.New(fiber.Config{BodyLimit: 16 << 20})

	h := httpadapter.NewHandler(processor, snapshots, aiClient, cfg.TemplatesDir)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
