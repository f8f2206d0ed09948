package converters

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Projects geodetic coordinates to the earth-centered cartesian frame used by the renderer
type CoordinateConverter interface {
	// lon and lat in degrees, height in meters above the WGS84 ellipsoid
	ConvertToWGS84Cartesian(lon float64, lat float64, height float64) (r3.Vec, error)
	Cleanup()
}
