package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/daikiakiyoshi/trivia-api/internal/config"
	"github.com/daikiakiyoshi/trivia-api/internal/database"
	"github.com/daikiakiyoshi/trivia-api/internal/repository"
	"github.com/daikiakiyoshi/trivia-api/internal/routers"
	"github.com/daikiakiyoshi/trivia-api/internal/seed"
	"github.com/daikiakiyoshi/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// @title           Trivia API
// @version         1.0
// @description     Categories, questions and quiz draws for the trivia game
// @host            localhost:8080
// @BasePath        /

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := database.OpenStore(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer closeStore()

	if cfg.Seed.OnStart {
		if err := seedOnStart(ctx, store, cfg.Seed.File); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	triviaService := services.NewTriviaService(store)
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: routers.New(triviaService),
	}

	go func() {
		log.Printf("server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// seedOnStart fills an empty store: the default categories, then file if set.
func seedOnStart(ctx context.Context, store repository.Store, file string) error {
	created, err := seed.EnsureCategories(ctx, store)
	if err != nil {
		return err
	}
	if !created {
		log.Println("categories present, skipping seed")
		return nil
	}
	log.Printf("created %d default categories", len(seed.DefaultCategories))

	if file == "" {
		return nil
	}
	data, err := seed.Load(file)
	if err != nil {
		return err
	}
	n, err := seed.Import(ctx, store, data)
	if err != nil {
		return err
	}
	log.Printf("imported %d questions from %s", n, file)
	return nil
}
