package scene

import (
	"github.com/df07/weekend-pathtracer/pkg/core"
	"github.com/df07/weekend-pathtracer/pkg/material"
	"github.com/df07/weekend-pathtracer/pkg/renderer"
)

// NewRandomScene creates the classic field of small random spheres around
// three large ones. Every random choice comes from sampler, so a seeded
// sampler reproduces the same scene.
func NewRandomScene(sampler core.Sampler, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	s, err := NewScene(cameraConfig, renderer.DefaultSamplingConfig())
	if err != nil {
		return nil, err
	}

	glass := material.NewDielectric(1.5)

	// Ground
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	keepOut := core.NewVec3(4, 0.2, 0)
	for i := -11; i < 11; i++ {
		for j := -11; j < 11; j++ {
			chooseMat := sampler.Get1D()
			x := float64(i) + 0.9*sampler.Get1D()
			z := float64(j) + 0.9*sampler.Get1D()
			center := core.NewVec3(x, 0.2, z)

			if center.Subtract(keepOut).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8: // diffuse
				albedo := core.NewVec3(
					sampler.Get1D()*sampler.Get1D(),
					sampler.Get1D()*sampler.Get1D(),
					sampler.Get1D()*sampler.Get1D(),
				)
				s.AddSphere(center, 0.2, material.NewLambertian(albedo))
			case chooseMat < 0.95: // metal
				albedo := core.NewVec3(
					0.5*sampler.Get1D(),
					0.5*sampler.Get1D(),
					0.5*sampler.Get1D(),
				)
				s.AddSphere(center, 0.2, material.NewMetal(albedo, 0.5*sampler.Get1D()))
			default: // glass
				s.AddSphere(center, 0.2, glass)
			}
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s, nil
}
