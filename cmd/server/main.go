package main

import (
	"fmt"
	"log"

	"github.com/baajarmeh/wooridb/internal/api"
	"github.com/baajarmeh/wooridb/internal/config"
	"github.com/baajarmeh/wooridb/internal/engine"
	"github.com/baajarmeh/wooridb/internal/pg"
	"github.com/baajarmeh/wooridb/internal/seed"
)

func main() {
	cfg := config.LoadWithPath("wooridb.json")

	var mirror engine.Mirror
	if cfg.DBURL != "" {
		store, err := pg.Open(cfg.DBURL)
		if err != nil {
			log.Fatalf("Postgres connect failed: %v", err)
		}
		defer store.Close()
		mirror = store
		fmt.Println("Mirroring to Postgres")
	}

	storage := engine.NewStorage(mirror)

	catalogs, err := seed.LoadCatalogs(cfg.SeedDir)
	if err != nil {
		log.Fatalf("Seed load failed: %v", err)
	}
	if err := seed.Apply(storage, catalogs); err != nil {
		log.Fatalf("Seed apply failed: %v", err)
	}
	if len(catalogs) > 0 {
		fmt.Printf("Applied %d seed catalog(s)\n", len(catalogs))
	}

	fmt.Printf("WooriDB listening on :%s...\n", cfg.Port)
	if err := api.RunServer(":"+cfg.Port, storage); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
