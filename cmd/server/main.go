package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/witchhunt-game/backend/internal/auth"
	"github.com/witchhunt-game/backend/internal/config"
	"github.com/witchhunt-game/backend/internal/engine"
	"github.com/witchhunt-game/backend/internal/httpapi"
	"github.com/witchhunt-game/backend/internal/hub"
	"github.com/witchhunt-game/backend/internal/storage"
	"github.com/witchhunt-game/backend/internal/ws"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	store, err := storage.Open(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("open storage", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng := engine.New(cfg.Game)
	authSvc := auth.New(store, cfg.TokenSecret, cfg.TokenTTL, log)
	h := hub.NewHub(ctx, eng, store, store, log)

	api := httpapi.NewAPI(store, authSvc, h, cfg.Game, cfg.Rooms, log)
	handler := httpapi.SetupRoutes(api, authSvc, ws.Handler(h, authSvc, log))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		h.Inbox() <- hub.ShutdownHub{}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
	log.Info("shutdown complete")
}
