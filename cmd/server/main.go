package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/sessions"

	"github.com/Zitteraal/chesskeep/internal/config"
	"github.com/Zitteraal/chesskeep/internal/handler"
	"github.com/Zitteraal/chesskeep/internal/nlog"
	"github.com/Zitteraal/chesskeep/internal/repository"
	"github.com/Zitteraal/chesskeep/internal/server"
	"github.com/Zitteraal/chesskeep/internal/service"
	"github.com/Zitteraal/chesskeep/internal/session"
	"github.com/Zitteraal/chesskeep/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger := nlog.New(out, "chesskeep")

	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	var store sessions.Store
	if cfg.SessionBackend == config.SessionBackendMemory {
		logger.Logf("WARNING: memory session backend selected; sessions will not survive a restart")
		store = session.NewMemoryStore(cfg.CookieSecure, []byte(cfg.SessionSecret))
	} else {
		store = session.NewGormStore(db, cfg.CookieSecure, []byte(cfg.SessionSecret))
	}

	users := repository.NewGormUserRepository(db)
	games := repository.NewGormGameRepository(db)

	authService := service.NewAuthService(users, cfg.BcryptCost, logger)
	gameService := service.NewGameService(games, logger)

	h := handler.NewRouter(handler.RouterConfig{
		Status:     handler.NewStatusHandler(cfg.StorageDriver),
		Auth:       handler.NewAuthHandler(authService, store, logger),
		Games:      handler.NewGameHandler(gameService, logger),
		Store:      store,
		Logger:     logger,
		CORSOrigin: cfg.CORSOrigin,
		AccessLog:  out,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(h, logger)
	if err := srv.Run(ctx, cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
