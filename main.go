package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"LocalSketchpad/internal/config"
	"LocalSketchpad/internal/stroke"
	"LocalSketchpad/internal/ui"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		width      = flag.Int("width", 0, "surface width in pixels")
		height     = flag.Int("height", 0, "surface height in pixels")
		color      = flag.String("color", "", "initial stroke color (#rrggbb)")
		strokeW    = flag.Int("stroke", 0, "initial stroke width (1-10)")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error")
		fit        = flag.Bool("fit", false, "resize the surface with the window (clears it)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// flags override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "color":
			cfg.Color = *color
		case "stroke":
			cfg.StrokeWidth = *strokeW
		case "log-level":
			cfg.LogLevel = *logLevel
		case "fit":
			cfg.FitWindow = *fit
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	if level <= slog.LevelDebug {
		stroke.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	log.Printf("Starting sketchpad with a %dx%d surface", cfg.Width, cfg.Height)
	if err := ui.RunApp(cfg); err != nil {
		log.Fatalf("Failed to start UI: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
