package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"pasteleria/internal/bootstrap"
	"pasteleria/internal/config"
	"pasteleria/internal/infrastructure/logger"
	"pasteleria/internal/inquiry"
	"pasteleria/internal/order"
	"pasteleria/internal/product"
	"pasteleria/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := bootstrap.OpenDatabase(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected", zap.String("driver", cfg.Database.Driver))

	notifier, closeNotifier, err := bootstrap.NewNotifier(cfg.Notify, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating notifier", zap.Error(err))
	}
	defer func() {
		if err := closeNotifier(); err != nil {
			zapLogger.Warn("closing notifier", zap.Error(err))
		}
	}()

	productCtrl, _ := product.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, cfg, zapLogger)
	inquiryCtrl := inquiry.NewModule(db, notifier, zapLogger)

	router := server.NewRouter(db, productCtrl, orderCtrl, inquiryCtrl, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("server error", zap.Error(err))
		return
	}

	zapLogger.Info("server stopped gracefully")
}
