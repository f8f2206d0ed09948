package sampler

import (
	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"github.com/golang/glog"
)

const (
	// Rasters above these sizes still get processed, decimation bounds the work
	OversizedPixelCount = 1000 * 1000
	OversizedBytes      = 100 * 1024 * 1024
)

// Strided view over a raster. Grid column xIndex maps to raster column xIndex*SampleRate,
// the same holds for rows.
type SampledGrid struct {
	SampleRate int
	GridWidth  int
	GridHeight int
	Oversized  bool

	raster *data.RasterGrid
}

// Decimates the raster so that the shorter side holds roughly maxGridSize samples.
// Fails with EmptyRaster when the raster has less than 2 rows or columns or when the
// sample count does not match its dimensions.
func Sample(raster *data.RasterGrid, maxGridSize int) (*SampledGrid, error) {
	if raster == nil {
		return nil, errkind.New(errkind.EmptyRaster, "no raster")
	}
	if raster.Width < 2 || raster.Height < 2 {
		return nil, errkind.New(errkind.EmptyRaster, "raster is %dx%d, both sides must be at least 2", raster.Width, raster.Height)
	}
	if int64(len(raster.Samples)) != raster.PixelCount() {
		return nil, errkind.New(errkind.EmptyRaster, "raster is %dx%d but holds %d samples", raster.Width, raster.Height, len(raster.Samples))
	}
	if maxGridSize < 1 {
		return nil, errkind.New(errkind.InvalidOptions, "max grid size must be at least 1, got %d", maxGridSize)
	}

	sampleRate := ComputeSampleRate(raster.Width, raster.Height, maxGridSize)
	grid := &SampledGrid{
		SampleRate: sampleRate,
		GridWidth:  gridDimension(raster.Width, sampleRate),
		GridHeight: gridDimension(raster.Height, sampleRate),
		Oversized:  IsOversized(raster),
		raster:     raster,
	}

	if grid.Oversized {
		glog.Warningf("%s: raster %dx%d (%d bytes) exceeds the recommended size, decimating with sample rate %d",
			errkind.OversizedInput, raster.Width, raster.Height, raster.SizeBytes, sampleRate)
	}

	return grid, nil
}

// Returns max(1, floor(min(width, height) / maxGridSize))
func ComputeSampleRate(width int, height int, maxGridSize int) int {
	shorter := width
	if height < shorter {
		shorter = height
	}
	rate := shorter / maxGridSize
	if rate < 1 {
		return 1
	}
	return rate
}

// number of strided positions 0, rate, 2*rate, ... that fall inside the dimension.
// A trailing strip shorter than rate is dropped.
func gridDimension(dimension int, rate int) int {
	return (dimension-1)/rate + 1
}

// Reports whether the raster is larger than the recommended input size
func IsOversized(raster *data.RasterGrid) bool {
	return raster.PixelCount() > OversizedPixelCount || raster.SizeBytes > OversizedBytes
}

func (g *SampledGrid) Raster() *data.RasterGrid {
	return g.raster
}

// Returns the raster column addressed by grid column xIndex
func (g *SampledGrid) SourceX(xIndex int) int {
	return xIndex * g.SampleRate
}

// Returns the raster row addressed by grid row yIndex
func (g *SampledGrid) SourceY(yIndex int) int {
	return yIndex * g.SampleRate
}

// Returns the raw raster sample addressed by the grid cell (xIndex, yIndex)
func (g *SampledGrid) At(xIndex int, yIndex int) float64 {
	return g.raster.At(g.SourceX(xIndex), g.SourceY(yIndex))
}

func (g *SampledGrid) VertexCount() int {
	return g.GridWidth * g.GridHeight
}

// Reports whether the grid has at least one quad to triangulate
func (g *SampledGrid) CanTriangulate() bool {
	return g.GridWidth >= 2 && g.GridHeight >= 2
}
