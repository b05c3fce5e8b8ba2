package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/publish"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 0, "Port to serve on (default from RAYTRACER_SERVER_PORT, else 8080)")
	envFile := flag.String("env", ".env", "Environment file to load")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.ServerPort = *port
	}

	var uploader *publish.Uploader
	if cfg.S3.Enabled() {
		if uploader, err = publish.NewS3Uploader(cfg.S3); err != nil {
			log.Printf("Error configuring uploads: %v", err)
			os.Exit(1)
		}
		log.Printf("Uploads enabled to bucket %s", cfg.S3.Bucket)
	}

	// Create and start web server
	webServer := server.NewServer(cfg, uploader)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default&width=400&height=300", cfg.ServerPort)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
