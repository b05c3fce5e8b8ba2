package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/publish"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"planes scene", "planes", false},
		{"cornell scene", "cornell", false},
		{"spheregrid scene", "spheregrid", false},
		{"test scene", "test", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, renderer.CameraConfig{Width: 64, Height: 48})

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for scene type '%s', got %v", tt.sceneType, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.CameraConfig.Width != 64 || s.CameraConfig.Height != 48 {
				t.Errorf("Expected 64x48 override, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{
		"-scene", "cornell", "-width", "120", "-height", "90", "-fov", "60",
		"-format", "ppm", "-thumbnail", "32", "-workers", "2", "-tile", "8",
	}, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if opts.sceneName != "cornell" || opts.width != 120 || opts.height != 90 {
		t.Errorf("Unexpected scene options %+v", opts)
	}
	if opts.format != "ppm" || opts.thumbnail != 32 || opts.workers != 2 || opts.tileSize != 8 {
		t.Errorf("Unexpected output options %+v", opts)
	}
	if math.Abs(opts.cameraOverrides().FieldOfView-math.Pi/3) > 1e-12 {
		t.Errorf("Expected 60 degrees as pi/3 radians, got %f", opts.cameraOverrides().FieldOfView)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if opts.sceneName != "default" || opts.envFile != ".env" || opts.workers != -1 {
		t.Errorf("Unexpected defaults %+v", opts)
	}
	if opts.cameraOverrides() != (renderer.CameraConfig{}) {
		t.Errorf("Default flags should not override the camera, got %+v", opts.cameraOverrides())
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := [][]string{
		{"-width", "-1"},
		{"-fov", "180"},
		{"-fov", "-10"},
		{"-thumbnail", "-5"},
		{"-unknown"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := parseFlags(args, io.Discard); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	opts, err := parseFlags([]string{"-help"}, &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !opts.help {
		t.Error("Expected help to be set")
	}
	for _, want := range []string{"Available scenes:", "cornell", "-scene"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Help output should mention %q", want)
		}
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Format = canvas.FormatPPM
	cfg.NumWorkers = 3
	cfg.TileSize = 12
	cfg.OutputDir = "renders"

	unset := options{workers: -1}
	if err := unset.applyConfig(cfg); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if unset.format != "ppm" || unset.workers != 3 || unset.tileSize != 12 || unset.outputDir != "renders" {
		t.Errorf("Config values should fill unset options, got %+v", unset)
	}

	set := options{format: "png", workers: 0, tileSize: 4, outputDir: "mine"}
	if err := set.applyConfig(cfg); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if set.format != "png" || set.workers != 0 || set.tileSize != 4 || set.outputDir != "mine" {
		t.Errorf("Flags should win over config, got %+v", set)
	}

	bad := options{format: "bmp"}
	if err := bad.applyConfig(cfg); !errors.Is(err, canvas.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	id := uuid.MustParse("12345678-9abc-def0-1234-56789abcdef0")

	got := outputPath("output", "cornell", canvas.FormatPNG, at, id)
	expected := filepath.Join("output", "cornell", "render_20240309_140507_12345678.png")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	if thumb := thumbnailPath(got); thumb != filepath.Join("output", "cornell", "render_20240309_140507_12345678_thumb.png") {
		t.Errorf("Unexpected thumbnail path %s", thumb)
	}
}

func TestRun(t *testing.T) {
	for _, format := range []canvas.Format{canvas.FormatPPM, canvas.FormatPNG} {
		t.Run(string(format), func(t *testing.T) {
			opts := options{
				sceneName: "test",
				width:     24,
				height:    16,
				format:    string(format),
				thumbnail: 8,
				workers:   2,
				tileSize:  8,
				outputDir: t.TempDir(),
			}

			saved, err := run(context.Background(), opts, nil)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(saved) != 2 {
				t.Fatalf("Expected render and thumbnail, got %v", saved)
			}

			img, err := canvas.Open(saved[0])
			if err != nil {
				t.Fatalf("Failed to open render: %v", err)
			}
			if img.Width() != 24 || img.Height() != 16 {
				t.Errorf("Expected 24x16 render, got %dx%d", img.Width(), img.Height())
			}

			thumb, err := canvas.Open(saved[1])
			if err != nil {
				t.Fatalf("Failed to open thumbnail: %v", err)
			}
			if thumb.Width() != 8 || thumb.Height() > 8 {
				t.Errorf("Expected thumbnail within 8x8, got %dx%d", thumb.Width(), thumb.Height())
			}
			if filepath.Dir(saved[0]) != filepath.Join(opts.outputDir, "test") {
				t.Errorf("Render should be saved under the scene directory, got %s", saved[0])
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(context.Background(), options{sceneName: "missing", format: "png", outputDir: dir}, nil); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := options{sceneName: "test", width: 8, height: 8, format: "png", outputDir: dir}
	if _, err := run(ctx, opts, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// recordingS3 captures uploads made through the publish package
type recordingS3 struct {
	s3iface.S3API
	keys []string
}

func (r *recordingS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	r.keys = append(r.keys, aws.StringValue(input.Key))
	return &s3.PutObjectOutput{}, nil
}

func TestRun_Upload(t *testing.T) {
	fake := &recordingS3{}
	uploader, err := publish.NewUploader(fake, "renders", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	opts := options{sceneName: "test", width: 8, height: 8, format: "png", outputDir: t.TempDir()}
	saved, err := run(context.Background(), opts, uploader)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(fake.keys) != 1 || fake.keys[0] != "test/"+filepath.Base(saved[0]) {
		t.Errorf("Expected upload of test/%s, got %v", filepath.Base(saved[0]), fake.keys)
	}
}
