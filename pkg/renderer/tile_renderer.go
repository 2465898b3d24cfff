package renderer

import (
	"image"
	"math/rand"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{ID: id, Bounds: bounds}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}

// ShuffleTiles returns the tiles in a seeded random order. Rendering
// scattered tiles first gives a more even preview than row order.
func ShuffleTiles(tiles []*Tile, seed int64) []*Tile {
	shuffled := make([]*Tile, len(tiles))
	copy(shuffled, tiles)
	random := rand.New(rand.NewSource(seed))
	random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// TileRenderer renders tiles into a shared image
type TileRenderer struct {
	renderPixel PixelRenderer
}

// NewTileRenderer creates a tile renderer around a pixel renderer
func NewTileRenderer(renderPixel PixelRenderer) *TileRenderer {
	return &TileRenderer{renderPixel: renderPixel}
}

// RenderTile renders the tile's pixels into img and returns the pixel count.
// Tiles never overlap, so workers can share img without locking.
func (tr *TileRenderer) RenderTile(tile *Tile, img *image.RGBA) int {
	renderBounds(img, tile.Bounds, tr.renderPixel)
	return tile.Bounds.Dx() * tile.Bounds.Dy()
}

// extractTileImage copies a tile out of the full image, with its origin at (0,0)
func extractTileImage(img *image.RGBA, bounds image.Rectangle) *image.RGBA {
	tileImage := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			tileImage.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, img.RGBAAt(x, y))
		}
	}
	return tileImage
}
