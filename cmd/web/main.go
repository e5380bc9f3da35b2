package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/waibhq/waib/internal/config"
	"github.com/waibhq/waib/internal/db"
	"github.com/waibhq/waib/internal/logger"
	"github.com/waibhq/waib/internal/mailer"
	"github.com/waibhq/waib/internal/metrics"
	"github.com/waibhq/waib/internal/repository/postgres"
	"github.com/waibhq/waib/internal/services"
	"github.com/waibhq/waib/internal/session"
	"github.com/waibhq/waib/internal/web"
	"github.com/waibhq/waib/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)

	var send mailer.Sender
	if cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
		send, err = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.CompanyEmail)
		if err != nil {
			log.Error("smtp setup", "err", err)
			os.Exit(1)
		}
	} else {
		log.Warn("SMTP credentials unset, outbound mail disabled")
		send = mailer.NewNopSender(log)
	}

	sessions, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Error("redis connect", "err", err)
		os.Exit(1)
	}
	sessionMgr := session.NewManager(cfg.SessionSecret, cfg.Env == "prod")

	wp := worker.NewPool(4)
	defer wp.Stop()

	catalogSvc := services.NewCatalogService(repos.Templates)
	userSvc := services.NewUserService(repos.Users, send, wp, log)
	contactSvc := services.NewContactService(repos.ContactMessages, send, cfg.CompanyEmail, log)

	if os.Getenv("APP_SEED") != "false" {
		if err := catalogSvc.Seed(ctx); err != nil {
			log.Error("seed", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	rn, err := web.NewRenderer(sessions, log)
	if err != nil {
		log.Error("renderer", "err", err)
		os.Exit(1)
	}
	h := web.NewHandlers(catalogSvc, userSvc, contactSvc, sessions, rn, log)
	r := web.NewRouter(cfg, log, h, sessionMgr, sessions, repos.Users)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
