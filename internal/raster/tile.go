package raster

import "image"

// DefaultTileSize is the edge length of a square render tile in pixels.
const DefaultTileSize = 32

// Tile is one unit of work for the worker pool.
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// SplitTiles covers a width x height surface with non-overlapping tiles,
// row-major from the top-left. Edge tiles are clipped to the surface.
func SplitTiles(width, height, tileSize int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	tiles := make([]Tile, 0, ((width+tileSize-1)/tileSize)*((height+tileSize-1)/tileSize))
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
			})
		}
	}
	return tiles
}
