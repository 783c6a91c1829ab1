package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gblaquiere.dev/billing-guard/handler"
	"gblaquiere.dev/billing-guard/internal/app"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("app.New: %v", err)
	}
	defer a.Logger.Sync()

	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           handler.NewRouter(handler.NewPushHandler(a.Guard, a.Logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.Logger.Info("Listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Fatal("srv.ListenAndServe", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("srv.Shutdown", zap.Error(err))
	}
}
