package main

import (
	"context"
	"log"
	"os"

	"orderdesk/config"
	"orderdesk/internal/menu"
	"orderdesk/internal/service"
	"orderdesk/internal/store"
	"orderdesk/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := util.InitLogger(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting orderdesk")

	db, err := store.NewStore(cfg.Database.URL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	logger.Info("Database ready")

	catalog := service.NewCatalog(db)
	directory := service.NewDirectory(db)
	roster := service.NewRoster(db)
	orders := service.NewOrders(db, roster, directory)

	m := menu.New(menu.Deps{
		Catalog:   catalog,
		Directory: directory,
		Roster:    roster,
		Orders:    orders,
		DB:        db.DB(),
		ExportDir: cfg.ExportDir,
	}, os.Stdin, os.Stdout)

	m.Run(ctx)

	logger.Info("orderdesk exited")
}
