package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/weekend-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	SamplesPerPixel  int           // Samples taken for every pixel
	AverageLuminance float64       // Mean luminance of the final image, 0-1
	Elapsed          time.Duration // Wall time spent in the pixel loop
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the average of the accumulated samples
func (ps *PixelStats) GetColor() (core.Vec3, error) {
	color, err := ps.ColorAccum.Divide(float64(ps.SampleCount))
	if err != nil {
		return core.Vec3{}, fmt.Errorf("pixel has no samples: %w", err)
	}
	return color, nil
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			color := core.NewVec3(float64(c.R), float64(c.G), float64(c.B)).Multiply(1.0 / 255.0)
			total += color.Luminance()
		}
	}
	return total / float64(pixels)
}
