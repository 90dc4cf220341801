package main

import (
	"log"

	"github.com/artur/thor-downloader/internal/bot"
	"github.com/artur/thor-downloader/internal/config"
	"github.com/artur/thor-downloader/internal/database"
	"github.com/artur/thor-downloader/internal/database/repository"
	"github.com/artur/thor-downloader/internal/downloader"
	"github.com/artur/thor-downloader/internal/handler"
	"github.com/artur/thor-downloader/internal/health"
	"github.com/artur/thor-downloader/internal/quota"
	"github.com/artur/thor-downloader/internal/service"
)

func main() {
	cfg := config.Load()
	if cfg.Token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db.DB)
	downloadRepo := repository.NewDownloadRepository(db.DB)

	gate := quota.NewGate(userRepo, downloadRepo, cfg.MaxFreeDownloads)
	executor := downloader.NewYTDLPExecutor(cfg.DownloadDir, downloader.NewFFmpegTranscoder())
	orchestrator := service.NewOrchestrator(gate, executor, downloadRepo)

	b, err := bot.New(cfg.Token)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	b.RegisterHandler(handler.NewStartHandler(userRepo))
	b.RegisterHandler(handler.NewStatsHandler(userRepo, downloadRepo, cfg.AdminChatID))
	b.RegisterHandler(handler.NewDownloadHandler(orchestrator, userRepo, downloader.NewYouTubeProbe(), cfg.PaymentNumber, cfg.VIPPrice))

	// Liveness endpoint runs beside the polling loop.
	go func() {
		if err := health.Run(cfg.Port); err != nil {
			log.Fatalf("Health server failed: %v", err)
		}
	}()

	b.SendStartupNotification(cfg.AdminChatID)

	b.Run()
}
