package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Options holds the parsed command line configuration
type Options struct {
	Scene      string
	Width      int
	Height     int
	Aperture   float64
	MaxBounces int // -1 uses the scene's recommendation
	Workers    int
	TileSize   int
	Output     string
	Format     string
}

func main() {
	opts := Options{}
	flag.StringVar(&opts.Scene, "scene", "default", "Scene: builtin id, file:<name> from scenes/, or a path to a .json scene")
	flag.IntVar(&opts.Width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&opts.Height, "height", 0, "Image height (0 = scene default)")
	flag.Float64Var(&opts.Aperture, "aperture", 0, "Field of view scale (0 = scene default)")
	flag.IntVar(&opts.MaxBounces, "bounces", -1, "Recursive bounce budget (-1 = scene default)")
	flag.IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&opts.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.StringVar(&opts.Output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	flag.StringVar(&opts.Format, "format", "png", "Image format when -output is not set: "+strings.Join(loaders.SupportedFormats, ", "))
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, opts, time.Now())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-14s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

func listScenes() error {
	response, err := scene.ListAllScenes()
	if err != nil {
		return err
	}
	for _, group := range response.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("  %-24s %s\n", info.ID, info.DisplayName)
		}
	}
	return nil
}

// run renders the configured scene and writes the image, returning its path
func run(ctx context.Context, opts Options, now time.Time) (string, error) {
	filename, err := outputPath(opts, now)
	if err != nil {
		return "", err
	}

	selectedScene, err := createScene(opts)
	if err != nil {
		return "", err
	}

	config := renderer.RenderConfig{
		MaxBounces: selectedScene.SamplingConfig.MaxBounces,
		NumWorkers: opts.Workers,
		TileSize:   opts.TileSize,
	}
	if opts.MaxBounces >= 0 {
		config.MaxBounces = opts.MaxBounces
	}

	logger := renderer.NewDefaultLogger()
	raytracer := renderer.NewSceneRaytracer(selectedScene, config, logger)
	logger.Printf("Rendering %s at %dx%d with %d bounces...\n",
		selectedScene.Name, raytracer.Width(), raytracer.Height(), raytracer.Config().MaxBounces)

	img, stats, err := raytracer.RenderParallel(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("%d pixels in %d tiles on %d workers\n", stats.TotalPixels, stats.TotalTiles, stats.NumWorkers)

	if err := loaders.SaveImage(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

// createScene resolves the scene flag and applies camera overrides
func createScene(opts Options) (*scene.Scene, error) {
	if opts.Scene == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("image size must not be negative, got %dx%d", opts.Width, opts.Height)
	}
	return scene.LoadScene(opts.Scene, scene.CameraConfig{
		Aperture: opts.Aperture,
		Width:    opts.Width,
		Height:   opts.Height,
	})
}

// outputPath returns the explicit output file or a timestamped default
func outputPath(opts Options, now time.Time) (string, error) {
	if opts.Output != "" {
		if _, err := loaders.ContentType(loaders.FormatFromPath(opts.Output)); err != nil {
			return "", err
		}
		return opts.Output, nil
	}

	if !slices.Contains(loaders.SupportedFormats, opts.Format) {
		return "", fmt.Errorf("%w: %q", loaders.ErrUnsupportedFormat, opts.Format)
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join(createOutputDir(opts.Scene), fmt.Sprintf("render_%s.%s", timestamp, opts.Format)), nil
}

// createOutputDir names the output directory after the scene
func createOutputDir(sceneID string) string {
	name := strings.TrimPrefix(sceneID, "file:")
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if name == "" || name == "." {
		name = "scene"
	}
	return filepath.Join("output", name)
}
