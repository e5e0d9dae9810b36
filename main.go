package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"yamdb-api/cmd"
	"yamdb-api/internal/data/repository"
	"yamdb-api/internal/wire"
	"yamdb-api/pkg/database"
	"yamdb-api/pkg/mail"
	"yamdb-api/pkg/token"
	"yamdb-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// run owns every deferred cleanup, so exit only after it returns
	if err := run(config, logger); err != nil {
		logger.Error("Application stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(config *utils.Config, logger *zap.Logger) error {
	ctx := context.Background()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("Migrations applied")
	}

	repos := repository.NewRepository(db, logger)

	sender, err := mail.NewSender(config.Email, logger)
	if err != nil {
		return fmt.Errorf("configure mail sender: %w", err)
	}
	notifier := mail.NewNotifier(sender, config.Email.From)

	issuer := token.NewIssuer(config.JWT.Secret, config.JWT.Issuer, config.JWT.AccessTTL, config.JWT.RefreshTTL)

	app := wire.Wiring(repos, notifier, issuer, logger)

	return cmd.APIServer(app.Router, config.App.Port, logger)
}
