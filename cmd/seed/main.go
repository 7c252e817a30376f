// Command seed loads categories and questions from a JSON or CSV file into
// the configured store.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/daikiakiyoshi/trivia-api/internal/config"
	"github.com/daikiakiyoshi/trivia-api/internal/database"
	"github.com/daikiakiyoshi/trivia-api/internal/seed"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	file := flag.String("file", "", "seed file (.json or .csv); defaults to seed.file from config")
	defaults := flag.Bool("defaults", true, "create the default categories when none exist")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *file == "" {
		*file = cfg.Seed.File
	}

	ctx := context.Background()
	store, closeStore, err := database.OpenStore(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer closeStore()

	if *defaults {
		created, err := seed.EnsureCategories(ctx, store)
		if err != nil {
			log.Fatalf("failed to create categories: %v", err)
		}
		if created {
			log.Printf("created %d default categories", len(seed.DefaultCategories))
		}
	}

	if *file == "" {
		return
	}
	data, err := seed.Load(*file)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *file, err)
	}
	n, err := seed.Import(ctx, store, data)
	if err != nil {
		log.Fatalf("import stopped after %d questions: %v", n, err)
	}
	log.Printf("imported %d questions from %s", n, *file)
}
