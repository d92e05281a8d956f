package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/output"
	"github.com/df07/weekend-pathtracer/pkg/renderer"
	"github.com/df07/weekend-pathtracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType       string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	Gamma           float64
	LookFrom        string
	LookAt          string
	VFov            float64
	Output          string
}

func main() {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "random", "Scene type: 'random', 'three-spheres' or 'empty'")
	flag.IntVar(&config.Width, "width", 800, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 400, "Image height in pixels")
	flag.IntVar(&config.SamplesPerPixel, "spp", 1, "Samples per pixel")
	flag.IntVar(&config.MaxDepth, "depth", 50, "Maximum ray depth")
	flag.Int64Var(&config.Seed, "seed", 0, "Random seed for scene generation and sampling")
	flag.Float64Var(&config.Gamma, "gamma", 1.0, "Output gamma (1 disables correction)")
	flag.StringVar(&config.LookFrom, "lookfrom", "", "Camera position as x,y,z (default depends on scene)")
	flag.StringVar(&config.LookAt, "lookat", "", "Camera target as x,y,z (default depends on scene)")
	flag.Float64Var(&config.VFov, "fov", 0, "Vertical field of view in degrees (default depends on scene)")
	flag.StringVar(&config.Output, "out", "render.ppm", "Output file; .png writes PNG, anything else PPM")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if err := run(config, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("The end!")
}

func showHelp() {
	fmt.Println("Weekend Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-13s - %s\n", info.ID, info.Description)
	}
}

// run renders the configured scene and writes the image
func run(config Config, logger core.Logger) error {
	sampler := core.NewSeededSampler(config.Seed)

	selectedScene, err := createScene(config.SceneType, sampler)
	if err != nil {
		return err
	}

	cameraConfig, err := cameraConfigFromFlags(selectedScene.CameraConfig, config)
	if err != nil {
		return err
	}
	if cameraConfig != selectedScene.CameraConfig {
		camera, err := renderer.NewCamera(cameraConfig)
		if err != nil {
			return fmt.Errorf("failed to create camera: %w", err)
		}
		selectedScene.Camera = camera
		selectedScene.CameraConfig = cameraConfig
	}

	samplingConfig := selectedScene.SamplingConfig
	samplingConfig.Width = config.Width
	samplingConfig.Height = config.Height
	samplingConfig.SamplesPerPixel = config.SamplesPerPixel
	samplingConfig.MaxDepth = config.MaxDepth
	samplingConfig.Gamma = config.Gamma
	selectedScene.SamplingConfig = samplingConfig

	logger.Printf("Rendering %s scene: %dx%d, %d samples per pixel, %d shapes\n",
		config.SceneType, samplingConfig.Width, samplingConfig.Height,
		samplingConfig.SamplesPerPixel, selectedScene.GetPrimitiveCount())

	raytracer, err := renderer.NewRaytracer(selectedScene, samplingConfig, sampler, logger)
	if err != nil {
		return err
	}

	startTime := time.Now()
	img, stats, err := raytracer.Render()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Rendering time: %d seconds\n", int(time.Since(startTime).Seconds()))
	logger.Printf("Pixels: %d, samples: %d, average luminance: %.3f\n",
		stats.TotalPixels, stats.TotalSamples, stats.AverageLuminance)

	if err := output.Save(config.Output, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", config.Output)
	return nil
}

// createScene builds the named scene, drawing any randomness from sampler
func createScene(sceneType string, sampler core.Sampler) (*scene.Scene, error) {
	return scene.NewSceneByName(sceneType, sampler)
}

// cameraConfigFromFlags applies the camera flags on top of a scene's camera.
// The aspect ratio always follows the image size.
func cameraConfigFromFlags(base renderer.CameraConfig, config Config) (renderer.CameraConfig, error) {
	result := base
	if config.Width > 0 && config.Height > 0 {
		result.AspectRatio = float64(config.Width) / float64(config.Height)
	}
	if config.VFov > 0 {
		result.VFov = config.VFov
	}
	if config.LookFrom != "" {
		lookFrom, err := core.ParseVec3(config.LookFrom)
		if err != nil {
			return renderer.CameraConfig{}, fmt.Errorf("invalid -lookfrom: %w", err)
		}
		result.LookFrom = lookFrom
	}
	if config.LookAt != "" {
		lookAt, err := core.ParseVec3(config.LookAt)
		if err != nil {
			return renderer.CameraConfig{}, fmt.Errorf("invalid -lookat: %w", err)
		}
		result.LookAt = lookAt
	}
	return result, nil
}
