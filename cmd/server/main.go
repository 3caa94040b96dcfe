package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"printaro-be/internal/cart"
	"printaro-be/internal/catalog"
	"printaro-be/internal/config"
	"printaro-be/internal/db"
	"printaro-be/internal/httpapi"
	"printaro-be/internal/logger"

	"go.uber.org/zap"
)

// Seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	cartStorage := cart.NewPostgresStorage(database, cfg.CartID)
	cartStore := cart.NewStore(cartStorage, catalogRepo)
	if err := cartStore.Load(context.Background()); err != nil {
		logger.L().Warn("starting with an empty cart", zap.Error(err))
	}

	return httpapi.NewRouter(httpapi.NewHandler(catalogSvc, cartStore))
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	log.Printf("server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
