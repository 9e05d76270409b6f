package main

import (
	"log"

	"github.com/joho/godotenv"

	"mitoviz/adapters/tabfile"
	visualizer "mitoviz/app"
	"mitoviz/internal"
	"mitoviz/internal/config"
	"mitoviz/internal/export"
	"mitoviz/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	reader := tabfile.NewReader(logger)
	service := visualizer.NewVisualizerService(reader, logger)

	app, err := ui.NewApp(ui.Config{
		Port:           appConfig.Server.Port,
		MaxUploadBytes: appConfig.Upload.MaxFileSize,
		DemoEnabled:    appConfig.Data.DemoEnabled,
		PreloadFile:    appConfig.Data.PreloadFile,
	}, service, export.NewExporter(), logger)
	if err != nil {
		log.Fatalf("Failed to create UI app: %v", err)
	}

	log.Printf("Starting MitoViz on http://localhost:%s", appConfig.Server.Port)
	log.Fatal(app.Start())
}
