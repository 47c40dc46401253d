package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/liquidswrds/csec3330-labs/pkg/api"
	"github.com/liquidswrds/csec3330-labs/pkg/config"
	"github.com/liquidswrds/csec3330-labs/pkg/logging"
	"github.com/liquidswrds/csec3330-labs/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	port := flag.Int("port", 0, "Override listen port")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.Logging.Level))
	logger.Info("lab server starting",
		logging.String("log_level", cfg.Logging.Level),
		logging.Int("port", cfg.Server.Port))

	apiServer, err := api.NewServer(cfg, logger)
	if err != nil {
		logger.Error("server init failed", logging.Error(err))
		os.Exit(1)
	}

	gs := server.NewGracefulServer(apiServer.Addr(), apiServer.Handler(), cfg.Server.ShutdownTimeout, logger)
	if err := gs.Start(); err != nil {
		logger.Error("server exited with error", logging.Error(err))
		os.Exit(1)
	}
}
