package normalizer

import (
	"math"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/sampler"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// Maps sampled grid cells to geographic coordinates and scaled heights that are always
// inside the valid ranges. A broken cell is repaired in place, only a broken bounding box
// is fatal.
type CoordinateNormalizer struct {
	elevationCorrector converters.ElevationCorrector
}

func NewCoordinateNormalizer(elevationCorrector converters.ElevationCorrector) *CoordinateNormalizer {
	return &CoordinateNormalizer{
		elevationCorrector: elevationCorrector,
	}
}

// Fails with InvalidBoundingBox if any component of the box is not a finite number
func ValidateBoundingBox(bbox data.BoundingBox) error {
	if !bbox.IsFinite() {
		return errkind.New(errkind.InvalidBoundingBox,
			"bounding box (%v, %v, %v, %v) has non finite components", bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat)
	}
	return nil
}

// Converts every cell of the sampled grid into a NormalizedVertex
func (n *CoordinateNormalizer) Normalize(grid *sampler.SampledGrid) (*data.NormalizedGrid, error) {
	raster := grid.Raster()
	bbox := raster.BBox
	if err := ValidateBoundingBox(bbox); err != nil {
		return nil, err
	}

	lonSpan := bbox.MaxLon - bbox.MinLon
	latSpan := bbox.MaxLat - bbox.MinLat
	xDenominator := float64(raster.Width - 1)
	yDenominator := float64(raster.Height - 1)

	vertexCount := grid.VertexCount()
	normalized := &data.NormalizedGrid{
		GridWidth:  grid.GridWidth,
		GridHeight: grid.GridHeight,
		Vertices:   make([]data.NormalizedVertex, vertexCount),
	}
	rawHeights := make([]float64, vertexCount)

	for yIndex := 0; yIndex < grid.GridHeight; yIndex++ {
		y := grid.SourceY(yIndex)
		for xIndex := 0; xIndex < grid.GridWidth; xIndex++ {
			x := grid.SourceX(xIndex)
			i := yIndex*grid.GridWidth + xIndex
			repaired := false

			lon := bbox.MinLon + (float64(x)/xDenominator)*lonSpan
			if !isFinite(lon) {
				lon = 0
				repaired = true
			}
			lat := bbox.MinLat + (float64(y)/yDenominator)*latSpan
			if !isFinite(lat) {
				lat = 0
				repaired = true
			}
			lon = WrapLongitude(lon)
			lat = ClampLatitude(lat)

			raw := raster.At(x, y)
			if !isFinite(raw) || raster.IsNoData(raw) {
				raw = 0
				repaired = true
			}
			height := n.elevationCorrector.CorrectElevation(lon, lat, raw)
			if !isFinite(height) {
				raw = 0
				height = 0
				repaired = true
			}

			if repaired {
				normalized.Repaired++
				if glog.V(2) {
					glog.Infof("%s: repaired cell x:[%d] y:[%d]", errkind.DegenerateCell, x, y)
				}
			}

			rawHeights[i] = raw
			normalized.Vertices[i] = data.NormalizedVertex{
				Lon:    lon,
				Lat:    lat,
				Height: height,
				U:      float64(x) / xDenominator,
				V:      float64(y) / yDenominator,
			}
		}
	}

	normalized.MinHeight = floats.Min(rawHeights)
	normalized.MaxHeight = floats.Max(rawHeights)

	if normalized.Repaired > 0 {
		glog.Warningf("%s: some values were repaired, %d of %d cells", errkind.DegenerateCell, normalized.Repaired, vertexCount)
	}

	return normalized, nil
}

// Reduces a longitude outside [-180, 180] modulo 360 into that range
func WrapLongitude(lon float64) float64 {
	if math.Abs(lon) <= 180 {
		return lon
	}
	wrapped := math.Mod(lon+180, 360)
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}

// Clamps a latitude into [-90, 90]
func ClampLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
