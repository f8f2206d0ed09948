package projection

import (
	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"gonum.org/v1/gonum/spatial/r3"
)

// Contains the minimal data needed to project one row of the mesh: the row vertices and the
// slice of the output position buffer they map to
type WorkUnit struct {
	Row       int
	Vertices  []data.NormalizedVertex
	Positions []r3.Vec
}
