package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"deliveryledger/cmd"
	"deliveryledger/internal/adapters/out/postgres/auditrepo"
	"deliveryledger/internal/adapters/out/postgres/packagerepo"
	"deliveryledger/internal/adapters/out/postgres/podrepo"
	"deliveryledger/internal/adapters/out/postgres/staffrepo"
	"deliveryledger/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	if err = app.EnsureBootstrapAdmin(context.Background()); err != nil {
		log.Fatalf("Error bootstrapping admin account: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
		NotifierEndpoint:        goDotEnvVariable("NOTIFIER_ENDPOINT"),
		BootstrapAdminAccountID: goDotEnvVariable("BOOTSTRAP_ADMIN_EXTERNAL_ID"),
		BootstrapAdminName:      goDotEnvVariable("BOOTSTRAP_ADMIN_NAME"),
		BootstrapAdminEmail:     goDotEnvVariable("BOOTSTRAP_ADMIN_EMAIL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&packagerepo.PackageDTO{},
		&packagerepo.ItemDTO{},
		&podrepo.PodDTO{},
		&podrepo.PodCounterDTO{},
		&staffrepo.StaffDTO{},
		&auditrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", app.CreateAuthMiddleware().Middleware())
	servers.RegisterHandlers(api, app.CreateHTTPServer())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
