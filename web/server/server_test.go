package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/weekend-pathtracer/pkg/scene"
)

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, NewServer(0), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, NewServer(0), "/api/scenes")
	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) != len(scene.ListScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.ListScenes()), len(scenes))
	}
}

func TestHandleRender(t *testing.T) {
	s := NewServer(0)
	rec := get(t, s, "/api/render?scene=empty&width=4&height=2&seed=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "image/png" {
		t.Errorf("Expected image/png, got %s", rec.Header().Get("Content-Type"))
	}
	if rec.Header().Get("X-Total-Samples") != "8" {
		t.Errorf("Expected 8 samples, got %s", rec.Header().Get("X-Total-Samples"))
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 4x2 image, got %v", img.Bounds())
	}

	console := s.console.snapshot()
	found := false
	for _, msg := range console {
		if strings.HasPrefix(msg.Message, "Progress: 100.00%") {
			found = true
		}
	}
	if !found {
		t.Error("Expected render progress in console history")
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown scene", "/api/render?scene=cornell"},
		{"width too large", "/api/render?width=5000"},
		{"width not a number", "/api/render?width=abc"},
		{"spp zero", "/api/render?spp=0"},
		{"bad seed", "/api/render?seed=x"},
		{"gamma out of range", "/api/render?gamma=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, NewServer(0), tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("Invalid JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error("Expected error message")
			}
		})
	}
}

func TestHandleSceneConfig(t *testing.T) {
	rec := get(t, NewServer(0), "/api/scene-config?scene=three-spheres")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body struct {
		Scene    string `json:"scene"`
		Shapes   int    `json:"shapes"`
		Defaults struct {
			MaxDepth int `json:"maxDepth"`
		} `json:"defaults"`
		Camera struct {
			Front [3]float64 `json:"front"`
			Right [3]float64 `json:"right"`
			Up    [3]float64 `json:"up"`
		} `json:"camera"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Scene != "three-spheres" || body.Shapes != 4 || body.Defaults.MaxDepth != 50 {
		t.Errorf("Unexpected scene config %+v", body)
	}

	// Three-sphere camera looks from (13,2,3) at the origin with world up
	front := body.Camera.Front
	if front[0] >= 0 || front[1] >= 0 || front[2] >= 0 {
		t.Errorf("Expected front to point toward the origin, got %v", front)
	}
	if body.Camera.Right[1] != 0 {
		t.Errorf("Expected a level right axis, got %v", body.Camera.Right)
	}
	if body.Camera.Up[1] <= 0 {
		t.Errorf("Expected up to lean toward world up, got %v", body.Camera.Up)
	}

	rec = get(t, NewServer(0), "/api/scene-config?scene=nope")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown scene, got %d", rec.Code)
	}
}

func TestHandleInspect(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		status      int
		expectHit   bool
		expectShape string
	}{
		{"sky only", "/api/inspect?scene=empty&width=4&height=2&x=1&y=0", http.StatusOK, false, ""},
		{"sphere at center", "/api/inspect?scene=three-spheres&width=40&height=20&x=20&y=10", http.StatusOK, true, "sphere"},
		{"x out of range", "/api/inspect?scene=empty&width=4&height=2&x=4&y=0", http.StatusBadRequest, false, ""},
		{"missing y", "/api/inspect?scene=empty&width=4&height=2&x=0", http.StatusBadRequest, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, NewServer(0), tt.target)
			if rec.Code != tt.status {
				t.Fatalf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}

			var response InspectResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("Invalid JSON: %v", err)
			}
			if response.Hit != tt.expectHit {
				t.Errorf("Expected hit=%v, got %v", tt.expectHit, response.Hit)
			}
			if !tt.expectHit {
				if response.ShapeIndex != -1 {
					t.Errorf("Expected shape index -1, got %d", response.ShapeIndex)
				}
				return
			}
			if response.GeometryType != tt.expectShape {
				t.Errorf("Expected %s, got %s", tt.expectShape, response.GeometryType)
			}
			if response.MaterialType == "unknown" || response.Distance <= 0 {
				t.Errorf("Unexpected inspection %+v", response)
			}
		})
	}
}
