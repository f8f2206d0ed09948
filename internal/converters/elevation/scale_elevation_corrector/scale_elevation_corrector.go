package scale_elevation_corrector

import "github.com/ecopia-map/cesium_terrain_mesher/internal/converters"

// Multiplies every raw height by a constant factor, the height exaggeration of the viewer
type ScaleElevationCorrector struct {
	Scale float64
}

func NewScaleElevationCorrector(scale float64) converters.ElevationCorrector {
	return &ScaleElevationCorrector{
		Scale: scale,
	}
}

func (c *ScaleElevationCorrector) CorrectElevation(lon, lat, z float64) float64 {
	return z * c.Scale
}
