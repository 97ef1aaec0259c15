package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"pasteleria/internal/bootstrap"
	"pasteleria/internal/commons"
	"pasteleria/internal/config"
	"pasteleria/internal/infrastructure/logger"
	"pasteleria/internal/product"
)

func main() {
	catalogPath := flag.String("catalog", "catalog.yaml", "YAML file with the products to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	inputs, err := commons.LoadCatalog(*catalogPath)
	if err != nil {
		zapLogger.Fatal("loading catalog", zap.Error(err))
	}

	db, err := bootstrap.OpenDatabase(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	_, catalog := product.NewModule(db, zapLogger)

	ctx := context.Background()
	created := 0
	for _, in := range inputs {
		if _, err := catalog.CreateProduct(ctx, in); err != nil {
			zapLogger.Error("skipping product", zap.String("name", in.Name), zap.Error(err))
			continue
		}
		created++
	}

	zapLogger.Info("catalog seeded", zap.Int("created", created), zap.Int("total", len(inputs)))
}
