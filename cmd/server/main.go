package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"rural-health-assistant/internal/auth"
	"rural-health-assistant/internal/config"
	"rural-health-assistant/internal/database"
	"rural-health-assistant/internal/diagnosis"
	"rural-health-assistant/internal/genai"
	"rural-health-assistant/internal/handlers"
	"rural-health-assistant/internal/logging"
	"rural-health-assistant/internal/middleware"
	"rural-health-assistant/internal/repository"
	"rural-health-assistant/internal/server"
	"rural-health-assistant/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	if cfg.GenAI.APIKey == "" {
		log.Warn("⚠️ genai.api_key is not set; model calls will fail and diagnoses will use fallback advice")
	}

	flush, err := telemetry.InitSentry(cfg.Sentry)
	if err != nil {
		log.WithError(err).Warn("Sentry initialization failed")
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	client, db, err := database.NewMongoDB(ctx, cfg.Mongo, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.WithError(err).Warn("MongoDB disconnect failed")
		}
	}()
	repo := repository.NewRepository(db, cfg.Mongo.Timeout)

	gen, err := genai.NewClient(ctx, cfg.GenAI, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create generation client")
	}
	pipeline := diagnosis.NewPipeline(gen, cfg.GenAI.Timeout, log)
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		if secret, err = auth.EphemeralSecret(); err != nil {
			log.WithError(err).Fatal("Failed to generate signing key")
		}
		log.Warn("⚠️ auth.jwt_secret is not set; login tokens are signed with a per-process key")
	}
	tokens := auth.NewTokenService(secret, cfg.Auth.TokenTTL)

	deps := handlers.Deps{
		Store:     repo,
		Diagnoser: pipeline,
		Generator: gen,
		Tokens:    tokens,
		Log:       log,
	}
	authn := &middleware.Authenticator{Tokens: tokens}

	if cfg.SessionsEnabled() {
		rdb, err := auth.Dial(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer closeRedis(rdb, log)

		sessions := auth.NewSessionStore(rdb, cfg.Redis.SessionTTL)
		deps.Sessions = sessions
		authn.Sessions = sessions
		log.Info("✅ Login sessions enabled")
	}

	h := handlers.NewHandler(deps)
	router := server.NewRouter(cfg, h, authn, log)

	if err := server.Run(ctx, cfg.Server, router, log); err != nil {
		log.WithError(err).Error("Server stopped with error")
	}
}

func closeRedis(rdb *redis.Client, log logrus.FieldLogger) {
	if err := rdb.Close(); err != nil {
		log.WithError(err).Warn("Redis close failed")
	}
}
