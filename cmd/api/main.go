package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"stay_directory/internal/adapters/genai"
	server "stay_directory/internal/adapters/http_server"
	"stay_directory/internal/adapters/observability"
	redisad "stay_directory/internal/adapters/redis"
	"stay_directory/internal/app"
	"stay_directory/internal/domain"
	"stay_directory/internal/shared"
	mysqlrepo "stay_directory/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tracker := app.NewReviewTracker(cache)
	catalog := app.NewCatalogService(repo, cache, tracker, cfg.CacheTTL)
	auth := app.NewAuth(cfg.AdminPassword)

	var gen domain.DescriptionGenerator
	if cfg.GenAIKey != "" {
		client, err := genai.New(cfg.GenAIBase, cfg.GenAIKey, cfg.GenAIModel, 2)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize genai client")
		}
		gen = client
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Catalog: catalog, Auth: auth, Gen: gen})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
