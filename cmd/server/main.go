package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	httpadapter "resume-studio/internal/adapter/http"
	repo "resume-studio/internal/adapter/repository"
	"resume-studio/internal/usecase"
	infra "resume-studio/pkg/infrastructure"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	pool, err := infra.NewCatalogPool(ctx)
	if err != nil {
		logger.Warn("template catalog DB not available, using built-in catalog", "error", err)
	}

	templates := repo.NewTemplatesRepo(pool)
	if err := templates.EnsureSchema(ctx); err != nil {
		logger.Warn("catalog schema setup failed, using built-in catalog", "error", err)
	}

	capture := infra.NewBrowserCapture(logger)
	printer := infra.NewPrintBackend()
	exporter := usecase.NewExporter(capture, printer, logger)

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
	})

	h := httpadapter.NewHandler(exporter, templates, logger)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	logger.Info("starting resume studio", "port", port)
	if err := app.Listen(":" + port); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
