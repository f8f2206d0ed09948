package mesh

import (
	"math"
	"testing"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters/ellipsoid"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"gonum.org/v1/gonum/spatial/r3"
)

func newGrid(width, height int) *data.NormalizedGrid {
	grid := &data.NormalizedGrid{
		GridWidth:  width,
		GridHeight: height,
		Vertices:   make([]data.NormalizedVertex, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.Vertices[y*width+x] = data.NormalizedVertex{
				Lon:    139 + float64(x)*0.02,
				Lat:    35 + float64(y)*0.02,
				Height: 10 * float64(x+y),
				U:      float64(x) / float64(width-1),
				V:      float64(y) / float64(height-1),
			}
		}
	}
	return grid
}

func TestTriangulateCounts(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		triangles     int
	}{
		{"50x50 grid", 50, 50, 4802},
		{"single quad", 2, 2, 2},
		{"rectangular", 5, 3, 16},
		{"single row", 5, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices := Triangulate(tt.width, tt.height)
			if len(indices) != IndexCount(tt.width, tt.height) {
				t.Errorf("len(indices) = %d, IndexCount = %d", len(indices), IndexCount(tt.width, tt.height))
			}
			if len(indices)/3 != tt.triangles {
				t.Errorf("triangles = %d, want %d", len(indices)/3, tt.triangles)
			}
			for _, idx := range indices {
				if int(idx) >= tt.width*tt.height {
					t.Fatalf("index %d out of [0, %d)", idx, tt.width*tt.height)
				}
			}
		})
	}
}

func TestTriangulateWinding(t *testing.T) {
	indices := Triangulate(3, 2)
	want := []uint32{
		0, 3, 1, 3, 4, 1,
		1, 4, 2, 4, 5, 2,
	}
	if len(indices) != len(want) {
		t.Fatalf("got %v, want %v", indices, want)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("got %v, want %v", indices, want)
		}
	}
}

// every triangle of a flat grid laid out in the xy plane must face the same way
func TestTriangulateConsistentNormals(t *testing.T) {
	width, height := 6, 4
	points := make([]r3.Vec, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			points[y*width+x] = r3.Vec{X: float64(x), Y: float64(y)}
		}
	}
	indices := Triangulate(width, height)
	for i := 0; i < len(indices); i += 3 {
		a, b, c := points[indices[i]], points[indices[i+1]], points[indices[i+2]]
		normal := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if normal.Z >= 0 {
			t.Fatalf("triangle %d (%v) has normal %+v, want negative z", i/3, indices[i:i+3], normal)
		}
	}
}

func TestBuild(t *testing.T) {
	grid := newGrid(5, 4)
	builder := NewBuilder(ellipsoid.NewEllipsoidCoordinateConverter(), 2)

	mesh, err := builder.Build(grid)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.VertexCount() != 20 || len(mesh.UVs) != 20 {
		t.Fatalf("got %d positions and %d uvs, want 20", mesh.VertexCount(), len(mesh.UVs))
	}
	if mesh.TriangleCount() != 2*4*3 {
		t.Errorf("TriangleCount() = %d, want 24", mesh.TriangleCount())
	}

	converter := ellipsoid.NewEllipsoidCoordinateConverter()
	for i, v := range grid.Vertices {
		want, _ := converter.ConvertToWGS84Cartesian(v.Lon, v.Lat, v.Height)
		if mesh.Positions[i] != want {
			t.Fatalf("position %d = %+v, want %+v", i, mesh.Positions[i], want)
		}
		if mesh.UVs[i] != [2]float32{float32(v.U), float32(v.V)} {
			t.Fatalf("uv %d = %v", i, mesh.UVs[i])
		}
	}

	for i, p := range mesh.Positions {
		if d := r3.Norm(r3.Sub(p, mesh.BoundingCenter)); d > mesh.BoundingRadius+1e-6 {
			t.Errorf("position %d lies %v m from the center, radius is %v", i, d, mesh.BoundingRadius)
		}
	}
	if mesh.BoundingRadius <= 0 || math.IsNaN(mesh.BoundingRadius) {
		t.Errorf("BoundingRadius = %v", mesh.BoundingRadius)
	}
}

func TestBuildRejectsDegenerateGrid(t *testing.T) {
	builder := NewBuilder(ellipsoid.NewEllipsoidCoordinateConverter(), 1)
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}} {
		grid := newGrid(dims[0], dims[1])
		if _, err := builder.Build(grid); !errkind.Is(err, errkind.DegenerateMesh) {
			t.Errorf("grid %v: error = %v, want %s", dims, err, errkind.DegenerateMesh)
		}
	}
}

func TestComputeBoundingSphere(t *testing.T) {
	center, radius := computeBoundingSphere([]r3.Vec{{X: -1}, {X: 3}, {Y: 2}})
	if center != (r3.Vec{X: 1, Y: 1}) {
		t.Errorf("center = %+v", center)
	}
	if math.Abs(radius-math.Sqrt(5)) > 1e-12 {
		t.Errorf("radius = %v, want %v", radius, math.Sqrt(5))
	}
}
