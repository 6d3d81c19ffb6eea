// Command migrate creates the survey table and imports the survey file into Postgres.
//
// Usage: migrate [path/to/survey.csv]
package main

import (
	"context"
	"log"
	"os"

	"obesitydash/adapters/excel"
	"obesitydash/adapters/postgres"
	"obesitydash/internal"
	"obesitydash/internal/config"
	"obesitydash/internal/migration"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	dataFile := appConfig.Data.File
	if len(os.Args) > 1 {
		dataFile = os.Args[1]
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Logging.Level)).Component("Migrate")
	ctx := context.Background()

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	runner := migration.NewRunner(appConfig.Database.Table)
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("Migration %s failed: %v", runner.Version(), err)
	}
	logger.Info("Schema %s ready for table %s", runner.Version(), appConfig.Database.Table)

	table, err := excel.NewDataReader(excel.DefaultExcelConfig(dataFile), logger).LoadTable(ctx)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", dataFile, err)
	}

	imported, err := postgres.NewSurveyRepository(db, appConfig.Database.Table).ReplaceAll(ctx, table)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	logger.Info("Imported %d records from %s", imported, dataFile)
}
