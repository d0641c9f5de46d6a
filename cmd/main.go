// @title Adventura Backend API
// @version 1.0
// @description Adventura Backend API for planning adventures with friends

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	_ "ADVENTURA_BACK-END/docs" // This is required for swagger
	"ADVENTURA_BACK-END/internal/cache"
	"ADVENTURA_BACK-END/internal/config"
	"ADVENTURA_BACK-END/internal/handlers"
	"ADVENTURA_BACK-END/internal/routes"
	"ADVENTURA_BACK-END/internal/service"
	"ADVENTURA_BACK-END/internal/storage"
	"ADVENTURA_BACK-END/internal/store"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// --- Postgres ---
	// pgxpool + simple protocol (needed behind PgBouncer on :6543)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "adventura-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	// --- Redis cache (optional) ---
	var rdb *redis.Client
	var listCache cache.Cache = cache.NewMemory()
	if cfg.IsRedisConfigured() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnf("redis unavailable, using in-process cache: %v", err)
			rdb = nil
		} else {
			listCache = cache.NewRedis(rdb)
			log.Infof("redis cache connected at %s", cfg.Redis.Addr)
		}
		cancel()
	}

	// --- Object storage signer ---
	var signer storage.Signer
	if cfg.IsStorageConfigured() {
		signer, err = storage.NewS3(cfg.Storage)
		if err != nil {
			log.Fatalf("storage signer: %v", err)
		}
	} else {
		log.Warn("no storage bucket configured, using local pseudo-signer")
		signer = storage.NewLocal(cfg.App.BaseURL+"/uploads", cfg.Storage.SignTTL)
	}

	// --- Service wiring ---
	svc := service.NewAdventureService(service.AdventureServiceDeps{
		Store:   store.NewPostgresAdventureStore(pool),
		Users:   store.NewPostgresUserStore(pool),
		Friends: store.NewPostgresFriendStore(pool),
		Cache:   listCache,
		Signer:  signer,
		AI:      service.NewAIClientFromConfig(cfg.AI),
		BaseURL: cfg.App.BaseURL,
		ListTTL: cfg.App.ListCacheTTL,
	})

	// --- HTTP Handlers ---
	adventuresHandler := handlers.NewAdventuresHandler(svc)
	friendsHandler := handlers.NewFriendsHandler(svc)
	healthHandler := handlers.NewHealthHandler(pool, rdb)

	routes.SetupRoutes(cfg, adventuresHandler, friendsHandler, healthHandler)

	// --- HTTP Server + Graceful Shutdown ---
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}
	log.Info("Server stopped.")
}
