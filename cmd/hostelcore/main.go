package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hostelcore/internal/auth"
	"hostelcore/internal/config"
	"hostelcore/internal/db"
	"hostelcore/internal/export"
	"hostelcore/internal/httpserver"
	"hostelcore/internal/logging"
	"hostelcore/internal/media"
	"hostelcore/internal/reports"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dbConn, err := db.Open(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer dbConn.Close()

	if err := db.RunMigrations(ctx, dbConn, "sql"); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	accounts := auth.NewStore(dbConn)
	if err := accounts.SeedFromFile(ctx, cfg.UsersPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("no seed file", "path", cfg.UsersPath)
		} else {
			log.Fatalf("seed accounts: %v", err)
		}
	}
	tokens := auth.NewTokenService(cfg.JWTSecret)
	authSvc := auth.NewService(accounts, tokens, cfg.SuperAdminName, cfg.SuperAdminPassword)

	// The media host is optional; without it, submissions with attachments
	// fail with 503 while everything else keeps working.
	var uploader media.Uploader
	if up, err := media.NewDriveUploader(ctx, cfg.DriveCredentials, cfg.DriveFolderID); err != nil {
		logger.Warn("media uploader disabled", "err", err)
	} else {
		uploader = up
	}

	reportStore := reports.NewStore(dbConn)
	reportSvc := reports.NewService(reportStore, uploader, logger)
	engine := export.NewEngine(reportStore)

	handler := httpserver.NewRouter(logger, authSvc, tokens, accounts, reportStore, reportSvc, engine, cfg.AllowedOrigins)
	server := httpserver.New(cfg.HTTPAddr, handler, logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
