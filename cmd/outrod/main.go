// Command outrod serves outro generation over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/presbrey/outro/config"
	"github.com/presbrey/outro/server"
)

func main() {
	configPath := flag.String("config", os.Getenv("OUTRO_CONFIG"), "path to a YAML, TOML or JSON config file")
	envFile := flag.String("env", ".env", "name of the env files to load from this and parent directories")
	addr := flag.String("addr", "", "listen address, overrides the config host and port")
	flag.Parse()

	if *envFile != "" {
		paths, err := config.LoadEnvFiles(*envFile)
		if err != nil {
			log.Fatalf("Failed to load env files: %v", err)
		}
		if len(paths) > 0 {
			log.Printf("Loaded %d environment file(s): %v", len(paths), paths)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		if err := cfg.SetListenAddress(*addr); err != nil {
			log.Fatalf("Invalid -addr: %v", err)
		}
	}
	timeout, err := cfg.ShutdownTimeout()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	srv := server.New(cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	case <-sigChan:
		log.Println("Shutdown signal received, stopping server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error stopping server: %v", err)
	}
	log.Println("Server stopped")
}
