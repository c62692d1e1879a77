package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/leterax/go-flycam/internal/logger"
	"github.com/leterax/go-flycam/pkg/config"
	"github.com/leterax/go-flycam/pkg/render"
	"go.uber.org/zap"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file (empty for defaults)")
	width := flag.Int("width", 0, "Window width override")
	height := flag.Int("height", 0, "Window height override")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting go-flycam", zap.String("config", *configPath))

	renderer, err := render.NewRenderer(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize renderer", zap.Error(err))
	}

	renderer.Run()
}
