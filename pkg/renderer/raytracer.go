package renderer

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Gamma           float64 // Output gamma; 1 leaves colors untouched
}

// DefaultSamplingConfig returns an 800x400 single-sample render at depth 50
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           800,
		Height:          400,
		SamplesPerPixel: 1,
		MaxDepth:        integrator.DefaultMaxDepth,
		Gamma:           1.0,
	}
}

// Validate checks that the configuration can produce an image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d: must be positive", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("invalid samples per pixel %d: must be positive", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("invalid max depth %d: must be positive", c.MaxDepth)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("invalid gamma %f: must be positive", c.Gamma)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	GetCamera() core.Camera
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	config     SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. All randomness, from pixel jitter to
// material scattering, is drawn from sampler in a fixed order.
func NewRaytracer(scene Scene, config SamplingConfig, sampler core.Sampler, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = config.MaxDepth

	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(integratorConfig),
		sampler:    sampler,
		logger:     logger,
	}, nil
}

// Render traces every pixel and returns the image with the top row at y=0.
// Row 0 of the loop is the bottom of the image plane (v near 0).
func (rt *Raytracer) Render() (*image.RGBA, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	camera := rt.scene.GetCamera()
	spp := rt.config.SamplesPerPixel

	startTime := time.Now()
	sampleUs := make([]float64, spp)
	sampleVs := make([]float64, spp)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			// Jitter for every sample is drawn before any ray is traced
			for k := 0; k < spp; k++ {
				jitter := rt.sampler.Get2D()
				sampleUs[k] = (float64(col) + jitter.X) / float64(width)
				sampleVs[k] = (float64(row) + jitter.Y) / float64(height)
			}

			var pixel PixelStats
			for k := 0; k < spp; k++ {
				ray, err := camera.GetRay(sampleUs[k], sampleVs[k])
				if err != nil {
					return nil, RenderStats{}, fmt.Errorf("pixel (%d, %d): %w", col, row, err)
				}
				sample, err := rt.integrator.RayColor(ray, rt.scene, rt.sampler)
				if err != nil {
					return nil, RenderStats{}, fmt.Errorf("pixel (%d, %d): %w", col, row, err)
				}
				pixel.AddSample(sample)
			}

			colorVec, err := pixel.GetColor()
			if err != nil {
				return nil, RenderStats{}, fmt.Errorf("pixel (%d, %d): %w", col, row, err)
			}
			img.SetRGBA(col, height-1-row, rt.vec3ToColor(colorVec))
		}
		rt.logger.Printf("Progress: %.2f%%\n", 100.0*float64(row+1)/float64(height))
	}

	stats := RenderStats{
		TotalPixels:      width * height,
		TotalSamples:     width * height * spp,
		SamplesPerPixel:  spp,
		AverageLuminance: CalculateAverageLuminance(img),
		Elapsed:          time.Since(startTime),
	}
	return img, stats, nil
}

// vec3ToColor converts a Vec3 color to RGBA, truncating each channel to a byte
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	if rt.config.Gamma != 1.0 {
		colorVec = colorVec.GammaCorrect(rt.config.Gamma)
	}

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
