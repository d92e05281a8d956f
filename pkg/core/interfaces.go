package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Camera maps normalized image-plane coordinates (s, t) in [0,1] to world-space rays
type Camera interface {
	GetRay(s, t float64) (Ray, error)
}
