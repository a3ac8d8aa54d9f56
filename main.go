package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	api2 "github.com/pagecraft/pages-go/lib/api"
	"github.com/pagecraft/pages-go/lib/page"
	settings2 "github.com/pagecraft/pages-go/lib/settings"
	"github.com/pagecraft/pages-go/lib/utils"
	"github.com/pagecraft/pages-go/lib/ws"
)

func main() {
	setupLogger := utils.SetupLogger()
	defer setupLogger.Sync()

	retrievedSettings, err := settings2.ReadConfig("")
	if err != nil {
		setupLogger.Fatal("Error reading configuration: " + err.Error())
		return
	}
	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())

	setupLogger.Info("Starting " + retrievedSettings.Title + "...")

	dataStore, err := utils.GetDB(retrievedSettings, setupLogger)
	if err != nil {
		setupLogger.Fatal("Error connecting to database: " + err.Error())
		return
	}

	pageManager := page.NewManager(dataStore, retrievedSettings.DefaultPageTitle, setupLogger)

	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewNotifier(hub, setupLogger)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	api2.Init(app, pageManager, hub, notifier, dataStore, retrievedSettings, validatorEvaluator, setupLogger)

	fiberString := fmt.Sprintf("%s:%s", retrievedSettings.IP, retrievedSettings.Port)
	setupLogger.Info("Listening on " + fiberString)
	if err := app.Listen(fiberString); err != nil {
		setupLogger.Error("Error starting server: " + err.Error())
		os.Exit(1)
	}
}
