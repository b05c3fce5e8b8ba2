package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// ErrInvalidConfig is returned when an environment value cannot be used
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds settings shared by the CLI and the web server
type Config struct {
	OutputDir  string        // Root directory for rendered images
	Format     canvas.Format // Output image format
	NumWorkers int           // Render workers (0 = use CPU count)
	TileSize   int           // Render tile edge in pixels
	ServerPort int           // Web server port

	S3 S3Config
}

// S3Config holds credentials for publishing renders to an S3-compatible bucket
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	CDNURL    string // Public base URL for uploaded objects (optional)
}

// Enabled reports whether a bucket is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Default returns the configuration used when no environment is set
func Default() Config {
	return Config{
		OutputDir:  "output",
		Format:     canvas.FormatPNG,
		NumWorkers: 0,
		TileSize:   32,
		ServerPort: 8080,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// Load reads envFile into the process environment, if it exists, and builds
// the configuration from the environment. Variables already set in the
// environment take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables over Default()
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.OutputDir = getEnv("RAYTRACER_OUTPUT_DIR", cfg.OutputDir)

	format, err := canvas.ParseFormat(getEnv("RAYTRACER_FORMAT", string(cfg.Format)))
	if err != nil {
		return Config{}, fmt.Errorf("%w: RAYTRACER_FORMAT: %v", ErrInvalidConfig, err)
	}
	cfg.Format = format

	if cfg.NumWorkers, err = getEnvInt("RAYTRACER_WORKERS", cfg.NumWorkers, 0); err != nil {
		return Config{}, err
	}
	if cfg.TileSize, err = getEnvInt("RAYTRACER_TILE_SIZE", cfg.TileSize, 1); err != nil {
		return Config{}, err
	}
	if cfg.ServerPort, err = getEnvInt("RAYTRACER_SERVER_PORT", cfg.ServerPort, 1); err != nil {
		return Config{}, err
	}
	if cfg.ServerPort > 65535 {
		return Config{}, fmt.Errorf("%w: RAYTRACER_SERVER_PORT %d out of range", ErrInvalidConfig, cfg.ServerPort)
	}

	cfg.S3 = S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", cfg.S3.Region),
		Bucket:    os.Getenv("S3_BUCKET"),
		CDNURL:    os.Getenv("CDN_URL"),
	}

	return cfg, nil
}

// getEnv returns the value of key, or fallback when it is unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt parses key as an integer no smaller than minValue
func getEnvInt(key string, fallback, minValue int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	if n < minValue {
		return 0, fmt.Errorf("%w: %s=%d must be at least %d", ErrInvalidConfig, key, n, minValue)
	}
	return n, nil
}
