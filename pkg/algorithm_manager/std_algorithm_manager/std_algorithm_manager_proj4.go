//go:build proj4

package std_algorithm_manager

import (
	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters/proj4_converter"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
)

func init() {
	converterFactories[terrain.ProjectionProj4] = proj4_converter.NewProj4CoordinateConverter
}
