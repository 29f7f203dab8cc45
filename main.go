package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"LocalSketch/internal/config"
	sketchnet "LocalSketch/internal/net"
	"LocalSketch/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	mode := flag.String("mode", "", "desktop, serve or discover (overrides config)")
	addr := flag.String("addr", "", "listen address for serve mode (overrides config)")
	advertise := flag.Bool("advertise", false, "announce the server over mDNS")
	verbose := flag.Bool("verbose", false, "log every pointer event and transition")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *advertise {
		cfg.Server.Advertise = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	switch cfg.Mode {
	case config.ModeServe:
		runServer(cfg)
	case config.ModeDiscover:
		runDiscover()
	default:
		log.Println("Starting desktop board")
		ui.RunApp(cfg)
	}
}

func runServer(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if url, err := sketchnet.ShareURL(cfg.Server.Addr); err == nil {
		log.Printf("Share link: %s", url)
	}
	if err := sketchnet.NewServer(cfg).ListenAndServe(ctx); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func runDiscover() {
	log.Println("Looking for sketch servers on the local network...")
	err := sketchnet.Browse(3*time.Second, func(addr string) {
		fmt.Printf("ws://%s/ws\n", addr)
	})
	if err != nil {
		log.Fatalf("Discovery failed: %v", err)
	}
}
