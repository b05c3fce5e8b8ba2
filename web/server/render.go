package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const maxImageSize = 2000

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string        // Scene ID (e.g., "cornell")
	Width       int           // Image width (0 = scene default)
	Height      int           // Image height (0 = scene default)
	FieldOfView float64       // Degrees (0 = scene default)
	Format      canvas.Format // Response image format
	Thumbnail   int           // Longest side of the returned image (0 = full size)
	Upload      bool          // Publish the image to S3
	JSON        bool          // Respond with RenderResponse instead of image bytes
}

// cameraOverrides converts the request's view parameters for the scene
func (req *RenderRequest) cameraOverrides() renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.FieldOfView * math.Pi / 180,
	}
}

// RenderResponse is the JSON body returned for output=json
type RenderResponse struct {
	ID        string           `json:"id"`
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Format    string           `json:"format"`
	ImageData string           `json:"imageData"` // Base64 encoded image
	URL       string           `json:"url,omitempty"`
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalTiles       int     `json:"totalTiles"`
	NumWorkers       int     `json:"numWorkers"`
	DurationMs       int64   `json:"durationMs"`
	PixelsPerSecond  float64 `json:"pixelsPerSecond"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// handleRender renders a scene synchronously and returns the image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if req.Upload && s.uploader == nil {
		writeError(w, http.StatusBadRequest, "Uploads are not configured")
		return
	}

	sceneObj, err := scene.New(req.Scene, req.cameraOverrides())
	if err != nil {
		if errors.Is(err, scene.ErrUnknownScene) {
			writeError(w, http.StatusBadRequest, "Unknown scene: "+req.Scene)
			return
		}
		log.Printf("Scene %s failed to build: %v", req.Scene, err)
		writeError(w, http.StatusInternalServerError, "Scene construction failed")
		return
	}
	camera, err := sceneObj.Camera()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := uuid.New().String()
	consoleChan := make(chan ConsoleMessage, 64)

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = s.config.NumWorkers
	renderConfig.TileSize = s.config.TileSize
	renderConfig.Logger = NewWebLogger(renderID, consoleChan)

	// Use request context to stop rendering when the client disconnects
	img, stats, err := camera.RenderContext(r.Context(), sceneObj.World, renderConfig)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("[%s] Client disconnected, render abandoned", renderID)
			return
		}
		writeError(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}
	luminance := renderer.AverageLuminance(img)

	if req.Thumbnail > 0 {
		img = img.Thumbnail(uint(req.Thumbnail), uint(req.Thumbnail))
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode image: "+err.Error())
		return
	}

	var publicURL string
	if req.Upload {
		key := fmt.Sprintf("%s/render_%s%s", sceneObj.Name, renderID, req.Format.Extension())
		if publicURL, err = s.uploader.Upload(r.Context(), key, buf.Bytes(), req.Format.ContentType()); err != nil {
			log.Printf("[%s] Upload failed: %v", renderID, err)
			writeError(w, http.StatusBadGateway, "Upload failed")
			return
		}
		w.Header().Set("X-Render-URL", publicURL)
	}

	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Pixels", strconv.Itoa(stats.TotalPixels))
	w.Header().Set("X-Render-Workers", strconv.Itoa(stats.NumWorkers))

	if req.JSON {
		writeJSON(w, http.StatusOK, RenderResponse{
			ID:        renderID,
			Scene:     sceneObj.Name,
			Width:     img.Width(),
			Height:    img.Height(),
			Format:    string(req.Format),
			ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
			URL:       publicURL,
			Stats: Stats{
				TotalPixels:      stats.TotalPixels,
				TotalTiles:       stats.TotalTiles,
				NumWorkers:       stats.NumWorkers,
				DurationMs:       stats.Duration.Milliseconds(),
				PixelsPerSecond:  stats.PixelsPerSecond(),
				AverageLuminance: luminance,
			},
			Console: drainConsole(consoleChan),
		})
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[%s] Failed to write response: %v", renderID, err)
	}
	log.Printf("[%s] %s render finished in %v", renderID, sceneObj.Name, stats.Duration.Round(time.Millisecond))
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.FieldOfView, err = parseFloatParam(query, "fov", 0, 1, 179); err != nil {
		return nil, err
	}
	if req.Thumbnail, err = parseIntParam(query, "thumbnail", 0, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Upload, err = parseBoolParam(query, "upload"); err != nil {
		return nil, err
	}

	req.Format = s.config.Format
	if format := query.Get("format"); format != "" {
		if req.Format, err = canvas.ParseFormat(format); err != nil {
			return nil, err
		}
	}

	switch output := query.Get("output"); output {
	case "", "image":
	case "json":
		req.JSON = true
	default:
		return nil, fmt.Errorf("invalid output: %s", output)
	}

	return req, nil
}
