package ellipsoid

import (
	"math"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters"
	"gonum.org/v1/gonum/spatial/r3"
)

// WGS84 ellipsoid parameters
const (
	SemiMajorAxis = 6378137.0
	Flattening    = 1 / 298.257223563

	eccentricitySquared = Flattening * (2 - Flattening)
)

type EllipsoidCoordinateConverter struct{}

func NewEllipsoidCoordinateConverter() converters.CoordinateConverter {
	return &EllipsoidCoordinateConverter{}
}

// Closed form geodetic to ECEF conversion on the WGS84 ellipsoid
func (c *EllipsoidCoordinateConverter) ConvertToWGS84Cartesian(lon float64, lat float64, height float64) (r3.Vec, error) {
	lonRad := toRadians(lon)
	latRad := toRadians(lat)
	sinLat, cosLat := math.Sincos(latRad)
	sinLon, cosLon := math.Sincos(lonRad)

	// prime vertical radius of curvature
	n := SemiMajorAxis / math.Sqrt(1-eccentricitySquared*sinLat*sinLat)

	return r3.Vec{
		X: (n + height) * cosLat * cosLon,
		Y: (n + height) * cosLat * sinLon,
		Z: (n*(1-eccentricitySquared) + height) * sinLat,
	}, nil
}

func (c *EllipsoidCoordinateConverter) Cleanup() {}

// Returns the distance from the earth center to the ellipsoid surface at the given latitude
func SurfaceRadius(lat float64) float64 {
	v, _ := (&EllipsoidCoordinateConverter{}).ConvertToWGS84Cartesian(0, lat, 0)
	return r3.Norm(v)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
