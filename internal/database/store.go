package database

import (
	"context"
	"log"

	"github.com/daikiakiyoshi/trivia-api/internal/config"
	"github.com/daikiakiyoshi/trivia-api/internal/repository"
)

// OpenStore connects the backend named in cfg.Type and, for SQL backends,
// migrates the schema. The returned close function releases the connection.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig) (repository.Store, func(), error) {
	if cfg.Type == "mongo" {
		client, db, err := repository.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("database connected (mongo %s)", cfg.MongoDatabase)
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("disconnect mongo: %v", err)
			}
		}
		return repository.NewMongoStore(db), closeFn, nil
	}

	db, err := Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return repository.NewGormStore(db), closeFn, nil
}
