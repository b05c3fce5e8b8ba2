package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/publish"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line. Zero values mean "use the scene or
// config default".
type options struct {
	sceneName       string
	width           int
	height          int
	fovDegrees      float64
	format          string
	thumbnail       int
	workers         int
	tileSize        int
	outputDir       string
	referenceBounds bool
	upload          bool
	envFile         string
	help            bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.sceneName, "scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.Float64Var(&opts.fovDegrees, "fov", 0, "Field of view in degrees (0 = scene default)")
	fs.StringVar(&opts.format, "format", "", "Output format: ppm or png (default from RAYTRACER_FORMAT, else png)")
	fs.IntVar(&opts.thumbnail, "thumbnail", 0, "Also save a thumbnail no larger than this many pixels per side")
	fs.IntVar(&opts.workers, "workers", -1, "Number of parallel workers (0 = CPU count, default from RAYTRACER_WORKERS)")
	fs.IntVar(&opts.tileSize, "tile", 0, "Tile size in pixels (default from RAYTRACER_TILE_SIZE, else 32)")
	fs.StringVar(&opts.outputDir, "output", "", "Output root directory (default from RAYTRACER_OUTPUT_DIR, else output)")
	fs.BoolVar(&opts.referenceBounds, "reference-bounds", false, "Leave the last row and column unrendered")
	fs.BoolVar(&opts.upload, "upload", false, "Upload the render to the configured S3 bucket")
	fs.StringVar(&opts.envFile, "env", ".env", "Environment file to load")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.help {
		printHelp(output)
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
		return opts, nil
	}
	if opts.width < 0 || opts.height < 0 || opts.thumbnail < 0 || opts.tileSize < 0 {
		return options{}, fmt.Errorf("sizes must not be negative")
	}
	if opts.fovDegrees < 0 || opts.fovDegrees >= 180 {
		return options{}, fmt.Errorf("field of view must be in (0, 180) degrees, got %g", opts.fovDegrees)
	}
	return opts, nil
}

// applyConfig fills unset options from the environment configuration
func (o *options) applyConfig(cfg config.Config) error {
	if o.format == "" {
		o.format = string(cfg.Format)
	}
	if _, err := canvas.ParseFormat(o.format); err != nil {
		return err
	}
	if o.workers < 0 {
		o.workers = cfg.NumWorkers
	}
	if o.tileSize == 0 {
		o.tileSize = cfg.TileSize
	}
	if o.outputDir == "" {
		o.outputDir = cfg.OutputDir
	}
	return nil
}

// cameraOverrides converts the size and field of view flags for the scene
func (o options) cameraOverrides() renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:       o.width,
		Height:      o.height,
		FieldOfView: o.fovDegrees * math.Pi / 180,
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>_<id>.<format>")
}

// createScene creates the named scene with the flag overrides applied
func createScene(name string, overrides renderer.CameraConfig) (*scene.Scene, error) {
	return scene.New(name, overrides)
}

// outputPath returns the file name for a render of sceneName
func outputPath(outputDir, sceneName string, format canvas.Format, at time.Time, id uuid.UUID) string {
	timestamp := at.Format("20060102_150405")
	return filepath.Join(outputDir, sceneName,
		fmt.Sprintf("render_%s_%s%s", timestamp, id.String()[:8], format.Extension()))
}

// thumbnailPath inserts a _thumb suffix before the extension
func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}

// run renders the scene and writes the result. It returns the saved paths.
func run(ctx context.Context, opts options, uploader *publish.Uploader) ([]string, error) {
	selectedScene, err := createScene(opts.sceneName, opts.cameraOverrides())
	if err != nil {
		return nil, err
	}
	camera, err := selectedScene.Camera()
	if err != nil {
		return nil, err
	}
	format, err := canvas.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Using %s scene...\n", selectedScene.Name)

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = opts.workers
	renderConfig.TileSize = opts.tileSize
	renderConfig.ReferenceBounds = opts.referenceBounds
	renderConfig.Logger = renderer.NewDefaultLogger()

	img, stats, err := camera.RenderContext(ctx, selectedScene.World, renderConfig)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("%.0f pixels/s, average luminance %.3f\n", stats.PixelsPerSecond(), renderer.AverageLuminance(img))

	id := uuid.New()
	filename := outputPath(opts.outputDir, selectedScene.Name, format, time.Now(), id)
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}
	if err := img.Save(filename, format); err != nil {
		return nil, fmt.Errorf("error saving render: %w", err)
	}
	fmt.Printf("Render saved as %s\n", filename)
	saved := []string{filename}

	if opts.thumbnail > 0 {
		thumbName := thumbnailPath(filename)
		thumb := img.Thumbnail(uint(opts.thumbnail), uint(opts.thumbnail))
		if err := thumb.Save(thumbName, format); err != nil {
			return saved, fmt.Errorf("error saving thumbnail: %w", err)
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbName)
		saved = append(saved, thumbName)
	}

	if uploader != nil {
		var buf bytes.Buffer
		if err := img.Encode(&buf, format); err != nil {
			return saved, err
		}
		key := filepath.ToSlash(filepath.Join(selectedScene.Name, filepath.Base(filename)))
		url, err := uploader.Upload(ctx, key, buf.Bytes(), format.ContentType())
		if err != nil {
			return saved, err
		}
		fmt.Printf("Render published at %s\n", url)
	}

	return saved, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.help {
		return
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := opts.applyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var uploader *publish.Uploader
	if opts.upload {
		if uploader, err = publish.NewS3Uploader(cfg.S3); err != nil {
			fmt.Fprintf(os.Stderr, "Error configuring upload: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Starting Whitted Raytracer...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := run(ctx, opts, uploader); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
