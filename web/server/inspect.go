package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/geometry"
	"github.com/df07/weekend-pathtracer/pkg/integrator"
	"github.com/df07/weekend-pathtracer/pkg/material"
	"github.com/df07/weekend-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ShapeIndex   int                    `json:"shapeIndex"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = [3]float64{m.Albedo.X, m.Albedo.Y, m.Albedo.Z}
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = [3]float64{m.Albedo.X, m.Albedo.Y, m.Albedo.Z}
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

func geometryType(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Box:
		return "box"
	default:
		return "unknown"
	}
}

// inspectPixel casts an unjittered ray through the center of a pixel and
// reports the closest shape it hits. pixelY counts down from the top row.
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) (InspectResponse, error) {
	s := (float64(pixelX) + 0.5) / float64(width)
	t := (float64(height-1-pixelY) + 0.5) / float64(height)

	ray, err := sceneObj.GetCamera().GetRay(s, t)
	if err != nil {
		return InspectResponse{}, err
	}

	shapes := sceneObj.GetShapes()
	closest, index, err := geometry.HitClosestIndex(shapes, ray, integrator.TMin, integrator.TMax)
	if err != nil {
		return InspectResponse{}, err
	}
	if closest == nil {
		return InspectResponse{ShapeIndex: -1}, nil
	}

	response := InspectResponse{
		Hit:          true,
		ShapeIndex:   index,
		GeometryType: geometryType(shapes[index]),
		Point:        vecArray(closest.Point),
		Normal:       vecArray(closest.Normal),
		Distance:     closest.T,
	}
	response.MaterialType, response.Properties = extractMaterialInfo(closest.Material)
	return response, nil
}

// handleInspect reports what is visible through a pixel of a render request
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	query := r.URL.Query()
	pixelX, err := strconv.Atoi(query.Get("x"))
	if err != nil || pixelX < 0 || pixelX >= req.Width {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("x must be between 0 and %d", req.Width-1))
		return
	}
	pixelY, err := strconv.Atoi(query.Get("y"))
	if err != nil || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("y must be between 0 and %d", req.Height-1))
		return
	}

	sceneObj, err := scene.NewSceneByName(req.Scene, core.NewSeededSampler(req.Seed))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := applyImageSize(sceneObj, req.Width, req.Height); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response, err := inspectPixel(sceneObj, req.Width, req.Height, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}
