package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leterax/go-flycam/internal/logger"
	"github.com/leterax/go-flycam/pkg/config"
	"github.com/leterax/go-flycam/pkg/replay"
	"github.com/leterax/go-flycam/pkg/scene"
	"go.uber.org/zap"
)

func main() {
	scriptPath := flag.String("script", "", "YAML input script to replay")
	configPath := flag.String("config", "", "YAML config file for controller tuning (empty for defaults)")
	finalOnly := flag.Bool("final", false, "Print only the last pose")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: flyreplay -script <file.yaml> [-config <file.yaml>] [-final]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Log.Level = *logLevel

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	script, err := replay.Load(*scriptPath)
	if err != nil {
		log.Fatal("failed to load script", zap.Error(err))
	}

	poses, err := replay.Run(script, cfg.Controller, log)
	if err != nil {
		log.Fatal("replay failed", zap.Error(err))
	}

	if *finalOnly {
		last, ok := replay.Final(poses)
		if !ok {
			log.Fatal("replay recorded no poses")
		}
		poses = []scene.Pose{last}
		log.Info("final pose", zap.Int("frame", last.Frame))
	}
	if err := replay.WritePoses(os.Stdout, poses); err != nil {
		log.Fatal("failed to write poses", zap.Error(err))
	}
}
