package data

import "math"

// Contains a decoded elevation raster: a row-major grid of height samples covering a geographic
// bounding box. A raster is never modified once handed to the mesher.
type RasterGrid struct {
	Width     int         // number of columns
	Height    int         // number of rows
	BBox      BoundingBox // geographic extent in degrees, may be malformed
	Samples   []float64   // row-major heights, len = Width*Height
	NoData    *float64    // optional no-data marker
	SizeBytes int64       // size of the decoded source in bytes, 0 if unknown
}

// Builds a new RasterGrid without a no-data marker
func NewRasterGrid(width int, height int, bbox BoundingBox, samples []float64) *RasterGrid {
	return &RasterGrid{
		Width:   width,
		Height:  height,
		BBox:    bbox,
		Samples: samples,
	}
}

// Returns the raw sample stored at column x and row y
func (r *RasterGrid) At(x int, y int) float64 {
	return r.Samples[y*r.Width+x]
}

// Reports whether v equals the raster no-data marker
func (r *RasterGrid) IsNoData(v float64) bool {
	if r.NoData == nil {
		return false
	}
	nd := *r.NoData
	if math.IsNaN(nd) {
		return math.IsNaN(v)
	}
	return v == nd
}

func (r *RasterGrid) PixelCount() int64 {
	return int64(r.Width) * int64(r.Height)
}

// Geographic bounding box, in degrees
type BoundingBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

func NewBoundingBox(minLon, minLat, maxLon, maxLat float64) BoundingBox {
	return BoundingBox{
		MinLon: minLon,
		MinLat: minLat,
		MaxLon: maxLon,
		MaxLat: maxLat,
	}
}

// Reports whether all four components are finite numbers
func (b BoundingBox) IsFinite() bool {
	for _, v := range b.GetAsArray() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (b BoundingBox) LonRange() float64 {
	return math.Abs(b.MaxLon - b.MinLon)
}

func (b BoundingBox) LatRange() float64 {
	return math.Abs(b.MaxLat - b.MinLat)
}

// Returns the unwrapped midpoint of the box
func (b BoundingBox) Center() (lon float64, lat float64) {
	return (b.MinLon + b.MaxLon) / 2, (b.MinLat + b.MaxLat) / 2
}

// Returns the box as [minLon, minLat, maxLon, maxLat]
func (b BoundingBox) GetAsArray() []float64 {
	return []float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat}
}
