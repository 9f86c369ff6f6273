package main

import (
	"EventKeeper/internal/config"
	"EventKeeper/internal/handlers"
	"EventKeeper/internal/middleware"
	"EventKeeper/internal/repo"
	"EventKeeper/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	eventRepo := repo.NewEventRepository(gormDB)

	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, userRepo, sugar)
	uploadService := service.NewUploadService(cfg.UploadDir, sugar)

	// seed-учётка только из явно заданных реквизитов
	created, err := userService.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword)
	if err != nil {
		sugar.Fatalw("failed to seed admin user", "error", err)
	}
	if created {
		sugar.Infow("Seed admin user created", "login", cfg.AdminLogin)
	} else if cfg.AdminLogin == "" {
		sugar.Warnw("No admin credentials configured; set ADMIN_LOGIN/ADMIN_PASSWORD to seed the first user")
	}

	h := handlers.NewHandler(userService, eventService, uploadService, sugar, cfg)

	addr := cfg.RunAddr

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"RunAddr", cfg.RunAddr,
		"DatabaseDSN", cfg.DatabaseDSN,
		"UploadDir", cfg.UploadDir,
		"EnableHTTPS", cfg.EnableHTTPS,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
