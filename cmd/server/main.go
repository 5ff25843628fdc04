package main

import (
	"net/http"

	"go.uber.org/zap"

	"clonestore/internal/config"
	"clonestore/internal/handlers"
	"clonestore/internal/middleware"
	"clonestore/internal/repo"
	"clonestore/internal/service"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	db, err := repo.InitDB(cfg.DatabasePath)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	plasmidRepo := repo.NewPlasmidRepository(db)
	organismRepo := repo.NewMicroorganismRepository(db)
	genericRepo := repo.NewGenericObjectRepository(db)
	storageRepo := repo.NewStorageRepository(db)
	searchRepo := repo.NewSearchRepository(db)
	printerRepo := repo.NewPrinterRepository(db)
	sessionRepo := repo.NewSessionRepository(db)

	plasmidService := service.NewPlasmidService(plasmidRepo)
	organismService := service.NewOrganismService(organismRepo)
	genericService := service.NewGenericService(genericRepo)
	storageService := service.NewStorageService(storageRepo, plasmidRepo)
	searchService := service.NewSearchService(searchRepo)
	printService := service.NewPrintService(printerRepo, cfg.FrontendURL)
	authService := service.NewAuthService(sessionRepo, cfg.AuthSecret, cfg.AccessToken, cfg.AccessTokenHash)

	h := handlers.NewHandler(
		plasmidService,
		organismService,
		genericService,
		storageService,
		searchService,
		printService,
		authService,
		sugar,
	)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
		"database", cfg.DatabasePath,
		"frontendURL", cfg.FrontendURL,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
