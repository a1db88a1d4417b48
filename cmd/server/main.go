package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/freightdock/drayman/internal/config"
)

func main() {
	var (
		configPath  = flag.String("config", "config.toml", "Path to base config file")
		overlayPath = flag.String("overlay", "", "Path to overlay config file")
	)
	flag.Parse()

	if v := os.Getenv("DRAYMAN_CONFIG"); v != "" && *configPath == "config.toml" {
		*configPath = v
	}
	if v := os.Getenv("DRAYMAN_CONFIG_OVERLAY"); v != "" && *overlayPath == "" {
		*overlayPath = v
	}

	cfg, err := config.Load(*configPath, *overlayPath)
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	server, err := NewServer(cfg)
	if err != nil {
		log.Fatal("server init failed: ", err)
	}

	if err := server.Start(); err != nil {
		log.Fatal("server start failed: ", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	if err := server.Shutdown(cfg.Server.ShutdownTimeoutDuration()); err != nil {
		log.Fatal("shutdown failed: ", err)
	}
}
