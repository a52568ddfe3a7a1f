package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"routeboard/cmd"
	inhttp "routeboard/internal/adapters/in/http"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(
		configs,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		RoutingServiceURL:   goDotEnvVariable("ROUTING_SERVICE_URL"),
		RoutingAPIKey:       goDotEnvVariable("ROUTING_API_KEY"),
		DefaultStartAddress: goDotEnvVariable("DEFAULT_START_ADDRESS"),
		SessionTTLMinutes:   goDotEnvVariable("SESSION_TTL_MINUTES"),
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

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := inhttp.NewServer(
		app.CreateCreateSessionCommandHandler(),
		app.CreateAddOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateRemoveOrderCommandHandler(),
		app.CreateAssignOrderGroupCommandHandler(),
		app.CreateAddGroupCommandHandler(),
		app.CreateRenameGroupCommandHandler(),
		app.CreateDeleteGroupCommandHandler(),
		app.CreateReorderOrderCommandHandler(),
		app.CreateDragSelectCommandHandler(),
		app.CreateSetSelectionCommandHandler(),
		app.CreateGetSessionViewQueryHandler(),
		app.CreatePlanRouteQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
