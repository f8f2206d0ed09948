package projection

import (
	"sync/atomic"
	"testing"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters/ellipsoid"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/pkg/errors"
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
				Lon:    139 + float64(x)*0.01,
				Lat:    35 + float64(y)*0.01,
				Height: float64(x * y),
			}
		}
	}
	return grid
}

type failingConverter struct {
	calls  int32
	failAt int32
}

func (c *failingConverter) ConvertToWGS84Cartesian(lon, lat, height float64) (r3.Vec, error) {
	if atomic.AddInt32(&c.calls, 1) == c.failAt {
		return r3.Vec{}, errors.New("projection failed")
	}
	return r3.Vec{X: lon, Y: lat, Z: height}, nil
}

func (c *failingConverter) Cleanup() {}

func TestProjectGridIsIndependentOfWorkers(t *testing.T) {
	grid := newGrid(17, 13)
	converter := ellipsoid.NewEllipsoidCoordinateConverter()

	reference, err := ProjectGrid(grid, converter, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 2, 4, 64} {
		got, err := ProjectGrid(grid, converter, workers)
		if err != nil {
			t.Fatalf("workers %d: %v", workers, err)
		}
		if len(got) != len(reference) {
			t.Fatalf("workers %d: %d positions, want %d", workers, len(got), len(reference))
		}
		for i := range got {
			if got[i] != reference[i] {
				t.Fatalf("workers %d: position %d = %+v, want %+v", workers, i, got[i], reference[i])
			}
		}
	}
}

func TestProjectGridOrder(t *testing.T) {
	grid := newGrid(4, 3)
	positions, err := ProjectGrid(grid, &failingConverter{}, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range grid.Vertices {
		want := r3.Vec{X: v.Lon, Y: v.Lat, Z: v.Height}
		if positions[i] != want {
			t.Errorf("position %d = %+v, want %+v", i, positions[i], want)
		}
	}
}

func TestProjectGridReportsErrors(t *testing.T) {
	grid := newGrid(50, 50)
	for _, workers := range []int{1, 4} {
		_, err := ProjectGrid(grid, &failingConverter{failAt: 7}, workers)
		if err == nil {
			t.Errorf("workers %d: expected an error", workers)
		}
	}
}
