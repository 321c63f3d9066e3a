package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/orderarchive/backend/internal/config"
	"github.com/orderarchive/backend/internal/modules/invoice"
	"github.com/orderarchive/backend/internal/modules/order"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("config load failed", "err", err)
	}

	// Order source: seeded in-memory history unless a database is configured.
	var repo order.Repository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalw("db open failed", "err", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalw("db ping failed", "err", err)
		}
		log.Infow("order source: postgres")
		repo = order.NewPostgresRepository(db)
	} else {
		log.Infow("order source: in-memory sample data")
		repo = order.NewMemoryRepository()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	orderService := order.NewService(repo)
	order.NewHandler(orderService).RegisterRoutes(router)

	generator := invoice.NewGenerator(cfg.DownloadDir, cfg.SupportEmail)
	dispatcher := invoice.NewDispatcher(generator, cfg.BulkDownloadDelay, log)
	invoice.NewHandler(orderService, generator, dispatcher, log).RegisterRoutes(router)

	addr := ":" + cfg.AppPort
	log.Infow("order archive API listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalw("http server crashed", "err", err)
	}
}
