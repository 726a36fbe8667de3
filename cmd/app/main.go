package main

import (
	"fmt"
	"os"

	"tracking/cmd"
	"tracking/internal/adapters/out/sqlite/orderrepo"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(sqlite.Open(configs.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error opening database %s: %v", configs.DBPath, err)
	}
	if err := orderrepo.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort: envOrDefault("HTTP_PORT", "8000"),
		DBPath:   envOrDefault("DB_PATH", "pedidos.db"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT},
	}))

	app.CreateHTTPServer().RegisterRoutes(e)
	e.GET("/ws", app.CreateWSHandler().Subscribe)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
