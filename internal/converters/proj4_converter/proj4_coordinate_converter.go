//go:build proj4

package proj4_converter

import (
	"math"
	"sync"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters"
	"github.com/pkg/errors"
	proj "github.com/xeonx/proj4"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// EPSG:4326
	geodeticDefinition = "+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs"

	// EPSG:4978
	geocentricDefinition = "+proj=geocent +ellps=WGS84 +datum=WGS84 +units=m +no_defs"
)

// Converts coordinates with the proj.4 library. proj.4 projection objects are not
// safe for concurrent use, calls are serialized.
type Proj4CoordinateConverter struct {
	source *proj.Proj
	target *proj.Proj
	sync.Mutex
}

func NewProj4CoordinateConverter() (converters.CoordinateConverter, error) {
	source, err := proj.InitPlus(geodeticDefinition)
	if err != nil {
		return nil, errors.Wrap(err, "cannot init geodetic projection")
	}
	target, err := proj.InitPlus(geocentricDefinition)
	if err != nil {
		source.Close()
		return nil, errors.Wrap(err, "cannot init geocentric projection")
	}

	return &Proj4CoordinateConverter{
		source: source,
		target: target,
	}, nil
}

func (c *Proj4CoordinateConverter) ConvertToWGS84Cartesian(lon float64, lat float64, height float64) (r3.Vec, error) {
	xs := []float64{toRadians(lon)}
	ys := []float64{toRadians(lat)}
	zs := []float64{height}

	c.Lock()
	err := proj.TransformRaw(c.source, c.target, xs, ys, zs)
	c.Unlock()

	if err != nil {
		return r3.Vec{}, errors.Wrapf(err, "cannot project lon %f lat %f", lon, lat)
	}

	return r3.Vec{X: xs[0], Y: ys[0], Z: zs[0]}, nil
}

// Releases the proj.4 projection objects
func (c *Proj4CoordinateConverter) Cleanup() {
	c.Lock()
	defer c.Unlock()
	if c.source != nil {
		c.source.Close()
		c.source = nil
	}
	if c.target != nil {
		c.target.Close()
		c.target = nil
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
