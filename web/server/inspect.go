package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	PatternType  string                 `json:"patternType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	InShadow     bool                   `json:"inShadow"`
	Color        [3]float64             `json:"color"` // Shaded, unclamped
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo describes the Phong parameters and pattern of a material
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"ambient":   mat.Ambient,
		"diffuse":   mat.Diffuse,
		"specular":  mat.Specular,
		"shininess": mat.Shininess,
	}

	switch p := mat.Pattern.(type) {
	case material.SolidPattern:
		properties["color"] = hexColor(p.Color)
		return "solid", properties
	case material.StripePattern:
		properties["colors"] = []string{hexColor(p.A), hexColor(p.B)}
		return "stripe", properties
	case material.CheckerPattern:
		properties["colors"] = []string{hexColor(p.A), hexColor(p.B)}
		return "checker", properties
	case material.GradientPattern:
		properties["colors"] = []string{hexColor(p.A), hexColor(p.B)}
		return "gradient", properties
	default:
		return "unknown", properties
	}
}

// extractGeometryType names the surface behind a shape
func extractGeometryType(shape geometry.Shape) string {
	obj, ok := shape.(*geometry.Object)
	if !ok {
		return "unknown"
	}
	switch obj.Surface().(type) {
	case geometry.Sphere:
		return "sphere"
	case geometry.Plane:
		return "plane"
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", obj.Surface()), "geometry.")
	}
}

func hexColor(c core.Color) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.R*255+0.5), int(c.G*255+0.5), int(c.B*255+0.5))
}

func tuple3(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// inspectPixel casts the camera ray through a pixel and describes the first
// visible surface
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (InspectResponse, error) {
	camera, err := sceneObj.Camera()
	if err != nil {
		return InspectResponse{}, err
	}

	ray := camera.RayForPixel(pixelX, pixelY)
	hit, ok := sceneObj.World.Intersect(ray).Hit()
	if !ok {
		return InspectResponse{Hit: false}, nil
	}

	comps := hit.PrepareComputations(ray)
	patternType, materialProps := extractMaterialInfo(comps.Object.Material())
	color := sceneObj.World.ShadeHit(comps)

	return InspectResponse{
		Hit:          true,
		GeometryType: extractGeometryType(comps.Object),
		PatternType:  patternType,
		Point:        tuple3(comps.Point),
		Normal:       tuple3(comps.NormalV),
		Distance:     comps.T,
		Inside:       comps.Inside,
		InShadow:     sceneObj.World.IsShadowed(comps.OverPoint),
		Color:        [3]float64{color.R, color.G, color.B},
		Properties:   map[string]interface{}{"material": materialProps},
	}, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	// Parse common scene parameters using the render request parser
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	query := r.URL.Query()
	pixelX, err := parseIntParam(query, "x", -1, 0, maxImageSize-1)
	if err != nil || pixelX < 0 {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := parseIntParam(query, "y", -1, 0, maxImageSize-1)
	if err != nil || pixelY < 0 {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := scene.New(req.Scene, req.cameraOverrides())
	if err != nil {
		if errors.Is(err, scene.ErrUnknownScene) {
			writeError(w, http.StatusBadRequest, "Unknown scene: "+req.Scene)
			return
		}
		writeError(w, http.StatusInternalServerError, "Scene construction failed")
		return
	}

	// Validate pixel coordinates
	if pixelX >= sceneObj.CameraConfig.Width || pixelY >= sceneObj.CameraConfig.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	response, err := inspectPixel(sceneObj, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}
