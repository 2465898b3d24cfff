package renderer

import (
	"image"
	"image/color"
	"math"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxBounces int // Bounce budget for each camera ray
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	TileSize   int // Size of each tile in pixels
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxBounces: 5,
		NumWorkers: runtime.NumCPU(),
		TileSize:   32,
	}
}

// PixelRenderer computes the final color of one pixel
type PixelRenderer func(x, y int) color.RGBA

// ToneMap converts one radiance channel to a byte, clamping to [0, 255]
func ToneMap(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(255, c*255))))
}

// RadianceToColor tone maps each channel independently
func RadianceToColor(r core.Radiance) color.RGBA {
	return color.RGBA{
		R: ToneMap(r.R),
		G: ToneMap(r.G),
		B: ToneMap(r.B),
		A: 255,
	}
}

// RenderImageWith fills img by calling renderPixel once per pixel in row-major order
func RenderImageWith(img *image.RGBA, renderPixel PixelRenderer) {
	renderBounds(img, img.Bounds(), renderPixel)
}

// renderBounds renders the pixels inside bounds. Concurrent calls are safe
// as long as their bounds do not overlap.
func renderBounds(img *image.RGBA, bounds image.Rectangle, renderPixel PixelRenderer) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, renderPixel(x, y))
		}
	}
}

// Raytracer renders a scene through a camera with an integrator.
// The image size comes from the scene's camera configuration.
// The scene is only read, so one Raytracer can serve any number of workers.
type Raytracer struct {
	scene      *scene.Scene
	camera     RayMaker
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, camera RayMaker, integratorInst integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// NewSceneRaytracer wires the scene's camera and a path tracer with config.MaxBounces
func NewSceneRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	return NewRaytracer(s, NewOriginCamera(s.CameraConfig), integrator.NewPathTracer(config.MaxBounces), config, logger)
}

// Width returns the output image width
func (rt *Raytracer) Width() int {
	return rt.scene.CameraConfig.Width
}

// Height returns the output image height
func (rt *Raytracer) Height() int {
	return rt.scene.CameraConfig.Height
}

// RenderPixel traces the camera ray through (x, y) and tone maps the result
func (rt *Raytracer) RenderPixel(x, y int) color.RGBA {
	ray := rt.camera.MakeRay(x, y)
	return RadianceToColor(rt.integrator.RayColor(ray, rt.scene))
}

// RenderImage renders every pixel sequentially on the calling goroutine
func (rt *Raytracer) RenderImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.Width(), rt.Height()))
	RenderImageWith(img, rt.RenderPixel)
	return img
}

// Config returns the effective render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}
