package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	TileImage *image.RGBA // Image data for just this tile

	// Progress information
	TileNumber int // Number of tiles finished so far, including this one
	TotalTiles int // Total number of tiles in the image
}

// RenderResult is the finished frame delivered by RenderAsync
type RenderResult struct {
	Image *image.RGBA
	Stats RenderStats
}

// RenderOptions configures asynchronous rendering behavior
type RenderOptions struct {
	TileUpdates bool // Whether to generate tile completion events
}

// RenderParallel renders the image with a pool of workers, one tile at a
// time per worker. The result is identical to RenderImage. tileCallback, if
// set, is called on the calling goroutine after each tile finishes.
// Cancelling ctx stops work at the next tile boundary and returns ctx.Err().
func (rt *Raytracer) RenderParallel(ctx context.Context, tileCallback func(TileCompletionResult)) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.Width(), rt.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	tiles := ShuffleTiles(NewTileGrid(width, height, rt.config.TileSize), 42)
	if len(tiles) == 0 {
		return img, RenderStats{NumWorkers: rt.config.NumWorkers}, nil
	}

	workerPool := NewWorkerPool(rt.RenderPixel, len(tiles), rt.config.NumWorkers)
	workerPool.Start(ctx)
	defer workerPool.Stop()

	rt.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		width, height, len(tiles), workerPool.GetNumWorkers())

	for _, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: tile.ID, Image: img})
	}

	stats := RenderStats{
		TotalTiles: len(tiles),
		NumWorkers: workerPool.GetNumWorkers(),
	}

	// Wait for all tiles and dispatch callbacks from this goroutine only
	tilesByID := make(map[int]*Tile, len(tiles))
	for _, tile := range tiles {
		tilesByID[tile.ID] = tile
	}
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			rt.logger.Printf("Rendering cancelled after %d of %d tiles\n", i, len(tiles))
			return nil, RenderStats{}, result.Error
		}
		stats.TotalPixels += result.Pixels

		if tileCallback != nil {
			tile := tilesByID[result.TaskID]
			tileCallback(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / rt.config.TileSize,
				TileY:      tile.Bounds.Min.Y / rt.config.TileSize,
				TileImage:  extractTileImage(img, tile.Bounds),
				TileNumber: i + 1,
				TotalTiles: len(tiles),
			})
		}
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Duration, stats.PixelsPerSecond())

	return img, stats, nil
}

// RenderAsync renders in a background goroutine and reports through channels.
// The caller should read from these channels in separate goroutines.
// If options.TileUpdates is false, the tile channel is closed immediately.
func (rt *Raytracer) RenderAsync(ctx context.Context, options RenderOptions) (<-chan RenderResult, <-chan TileCompletionResult, <-chan error) {
	resultChan := make(chan RenderResult, 1)
	tileCount := len(NewTileGrid(rt.Width(), rt.Height(), rt.config.TileSize))
	tileChan := make(chan TileCompletionResult, tileCount)
	errChan := make(chan error, 1)

	if !options.TileUpdates {
		close(tileChan)
	}

	go func() {
		defer close(resultChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)

		var tileCallback func(TileCompletionResult)
		if options.TileUpdates {
			tileCallback = func(result TileCompletionResult) {
				select {
				case tileChan <- result:
				case <-ctx.Done():
				}
			}
		}

		img, stats, err := rt.RenderParallel(ctx, tileCallback)
		if err != nil {
			errChan <- err
			return
		}

		select {
		case resultChan <- RenderResult{Image: img, Stats: stats}:
		case <-ctx.Done():
		}
	}()

	return resultChan, tileChan, errChan
}
