package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"procurement-authoring-api/internal/controller"
	"procurement-authoring-api/internal/repo"
	"procurement-authoring-api/internal/service"
	"procurement-authoring-api/pkg/http_server"
	"procurement-authoring-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, databaseName string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		log.Fatal(err)
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err.Error() == "no change" {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func Run() {
	_ = godotenv.Load()

	serverAddressEnv := os.Getenv("SERVER_ADDRESS")
	if serverAddressEnv == "" {
		serverAddressEnv = ":8080"
	}
	dbConnEnv := os.Getenv("POSTGRES_CONN")
	databaseEnv := os.Getenv("POSTGRES_DATABASE")

	var postgresDB *postgres.Postgres
	if dbConnEnv != "" {
		log.Println("Connecting database...")
		var err error
		postgresDB, err = postgres.NewDB(dbConnEnv)
		if err != nil {
			log.Fatal("Error occurred while connecting to db: ", err)
		}
		defer postgresDB.Close()

		log.Println("Running migrations...")
		runMigrations(postgresDB, databaseEnv)
	} else {
		log.Println("POSTGRES_CONN not set, using in-memory stores...")
	}

	repositories, err := repo.NewRepositories(postgresDB)
	if err != nil {
		log.Fatal("Error occurred while building repositories: ", err)
	}
	services := service.NewServices(repositories)
	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, serverAddressEnv)

	log.Println("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Println("Notify error: ", err)
	}

	log.Println("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Fatal("Shutdown error: ", err)
	}
	log.Println("Successful shutdown")
}
