package mesh

import (
	"math"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/projection"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Turns a normalized vertex grid into position, uv and index buffers
type Builder struct {
	coordinateConverter converters.CoordinateConverter
	workers             int
}

// Instantiates a new Builder. workers is the number of goroutines projecting the rows,
// <= 0 means one per CPU.
func NewBuilder(coordinateConverter converters.CoordinateConverter, workers int) *Builder {
	return &Builder{
		coordinateConverter: coordinateConverter,
		workers:             workers,
	}
}

// Builds the mesh. Fails with DegenerateMesh if the grid has less than two rows or columns.
func (b *Builder) Build(grid *data.NormalizedGrid) (*data.TerrainMesh, error) {
	if grid.GridWidth < 2 || grid.GridHeight < 2 {
		return nil, errkind.New(errkind.DegenerateMesh, "grid %dx%d has no quad to triangulate", grid.GridWidth, grid.GridHeight)
	}
	if len(grid.Vertices) != grid.GridWidth*grid.GridHeight {
		return nil, errkind.New(errkind.DegenerateMesh, "grid %dx%d holds %d vertices", grid.GridWidth, grid.GridHeight, len(grid.Vertices))
	}
	if uint64(len(grid.Vertices)) > math.MaxUint32 {
		return nil, errkind.New(errkind.DegenerateMesh, "%d vertices cannot be addressed by 32 bit indices", len(grid.Vertices))
	}

	positions, err := projection.ProjectGrid(grid, b.coordinateConverter, b.workers)
	if err != nil {
		return nil, errors.Wrap(err, "cannot build mesh positions")
	}

	uvs := make([][2]float32, len(grid.Vertices))
	for i, vertex := range grid.Vertices {
		uvs[i] = [2]float32{float32(vertex.U), float32(vertex.V)}
	}

	center, radius := computeBoundingSphere(positions)

	return &data.TerrainMesh{
		Positions:      positions,
		Indices:        Triangulate(grid.GridWidth, grid.GridHeight),
		UVs:            uvs,
		BoundingCenter: center,
		BoundingRadius: radius,
	}, nil
}

// Returns the number of indices of a gridWidth x gridHeight grid, two triangles per quad
func IndexCount(gridWidth int, gridHeight int) int {
	if gridWidth < 2 || gridHeight < 2 {
		return 0
	}
	return 6 * (gridWidth - 1) * (gridHeight - 1)
}

// Splits every quad of a row-major grid along the same diagonal. For the quad whose first corner is
// vertex i the triangles are (i, i+gridWidth, i+1) and (i+gridWidth, i+gridWidth+1, i+1), which keeps
// the winding identical for all of them.
func Triangulate(gridWidth int, gridHeight int) []uint32 {
	indices := make([]uint32, 0, IndexCount(gridWidth, gridHeight))
	w := uint32(gridWidth)

	for yIndex := 0; yIndex < gridHeight-1; yIndex++ {
		for xIndex := 0; xIndex < gridWidth-1; xIndex++ {
			i := uint32(yIndex*gridWidth + xIndex)
			indices = append(indices,
				i, i+w, i+1,
				i+w, i+w+1, i+1,
			)
		}
	}

	return indices
}

// bounding sphere centered on the axis aligned box of the positions
func computeBoundingSphere(positions []r3.Vec) (r3.Vec, float64) {
	if len(positions) == 0 {
		return r3.Vec{}, 0
	}

	min, max := positions[0], positions[0]
	for _, p := range positions[1:] {
		min = r3.Vec{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = r3.Vec{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
	}
	center := r3.Scale(0.5, r3.Add(min, max))

	radius := 0.0
	for _, p := range positions {
		radius = math.Max(radius, r3.Norm(r3.Sub(p, center)))
	}

	return center, radius
}
