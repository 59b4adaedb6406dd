package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/huric/internal/config"
	"github.com/agenthands/huric/internal/core"
	"github.com/agenthands/huric/internal/core/language"
	"github.com/agenthands/huric/internal/core/vocabulary"
	"github.com/agenthands/huric/internal/driver"
	"github.com/agenthands/huric/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}
	ctx := context.Background()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	lang, err := language.FromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize language utilities: %v", err)
	}

	vocab, err := vocabulary.Load(cfg.Vocabulary.Path)
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}

	// Publishing graphs needs Memgraph; everything else works without it.
	var store driver.GraphDriver
	d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Printf("Warning: graph store unavailable: %v", err)
	} else {
		defer d.Close(ctx)
		if err := d.BuildIndices(ctx); err != nil {
			log.Printf("Warning: failed to build indices: %v", err)
		}
		store = d
	}

	srv := server.NewServer(core.NewHuric(store, lang, vocab, cfg))
	r := srv.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
