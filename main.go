package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/dtaccel/backend/repository"
	"github.com/dtaccel/backend/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Setup structured logging with JSON format
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := services.LoadConfig()

	server := services.NewServer(config)

	if config.Database.URL != "" {
		pool, err := pgxpool.New(context.Background(), config.Database.URL)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}

		sqlDB := stdlib.OpenDBFromPool(pool)
		sqlDB.SetMaxIdleConns(config.Database.MaxIdleConns)
		sqlDB.SetMaxOpenConns(config.Database.MaxOpenConns)

		gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
		if err != nil {
			slog.Error("Failed to initialize ORM", "error", err)
			os.Exit(1)
		}
		slog.Info("Connected to database")

		repo := repository.NewGORMRepository(gormDB)
		if err := repo.AutoMigrate(); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed")

		server.SetDatabase(repo, pool)

		if config.Database.Seed {
			seeder := services.NewDatabaseSeeder(repo)
			if err := seeder.SeedDatabase(); err != nil {
				slog.Error("Failed to seed database", "error", err)
			}
		}
	} else {
		slog.Warn("Database URL not configured, running without database")
	}

	if err := server.InitializeServices(); err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	server.Start()
}
