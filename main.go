package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"obesitydash/adapters/chart"
	"obesitydash/adapters/excel"
	"obesitydash/adapters/postgres"
	"obesitydash/app"
	"obesitydash/domain/survey"
	"obesitydash/internal"
	"obesitydash/internal/api"
	"obesitydash/internal/config"
	"obesitydash/internal/dataset"
	"obesitydash/internal/errors"
	"obesitydash/ports"
	"obesitydash/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// openSource builds the survey source selected by DATA_SOURCE. The returned
// closer releases the database connection when there is one.
func openSource(appConfig *config.Config, logger *internal.Logger) (ports.SurveySource, func(), error) {
	if appConfig.Data.Source != config.SourcePostgres {
		reader := excel.NewDataReader(excel.DefaultExcelConfig(appConfig.Data.File), logger)
		return reader, func() {}, nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, nil, errors.DatabaseError("failed to connect to database", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, errors.DatabaseError("failed to ping database", err)
	}

	return postgres.NewSurveyRepository(db, appConfig.Database.Table), func() { db.Close() }, nil
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Logging.Level))
	gin.SetMode(appConfig.Server.GinMode)

	source, closeSource, err := openSource(appConfig, logger)
	if err != nil {
		log.Fatalf("Failed to open survey source: %v", err)
	}
	defer closeSource()

	cached := dataset.NewCache(source, appConfig.Data.CacheTTL, logger)
	logger.Info("Using survey source %s (cache TTL %s)", cached.Describe(), appConfig.Data.CacheTTL)
	if appConfig.Filter.ApplyFamilyHistory {
		logger.Info("Family history selection is applied to the row filter")
	}

	service := app.NewDashboardService(cached, survey.FilterOptions{
		ApplyFamilyHistory: appConfig.Filter.ApplyFamilyHistory,
	}, logger)

	server, err := ui.NewServer(ui.Options{
		Service: service,
		SVG:     chart.NewSVGRenderer(appConfig.Chart.Width, appConfig.Chart.Height),
		PNG:     chart.NewPNGRenderer(appConfig.Chart.Width, appConfig.Chart.Height),
		API:     api.NewHandler(service, logger).Routes(),
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if appConfig.Profiling.Enabled {
		go func() {
			logger.Info("pprof server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				logger.Error("pprof server failed: %v", err)
			}
		}()
	}

	logger.Info("Starting dashboard on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
