package std_algorithm_manager

import (
	"testing"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
)

func TestNewAlgorithmManager(t *testing.T) {
	opts := terrain.DefaultMesherOptions()
	opts.HeightScale = 3

	manager, err := NewAlgorithmManager(opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := manager.GetElevationCorrectionAlgorithm().CorrectElevation(139, 35, 10); got != 30 {
		t.Errorf("CorrectElevation() = %v, want 30", got)
	}
	if manager.GetCoordinateConverterAlgorithm() == nil {
		t.Fatal("no coordinate converter")
	}
	manager.GetCoordinateConverterAlgorithm().Cleanup()
}

func TestNewAlgorithmManagerUnknownProjection(t *testing.T) {
	opts := terrain.DefaultMesherOptions()
	opts.Projection = terrain.Projection("MERCATOR")

	if _, err := NewAlgorithmManager(opts); !errkind.Is(err, errkind.InvalidOptions) {
		t.Errorf("error = %v, want %s", err, errkind.InvalidOptions)
	}
	if IsProjectionAvailable(opts.Projection) {
		t.Error("MERCATOR reported as available")
	}
	if !IsProjectionAvailable(terrain.ProjectionEllipsoid) {
		t.Error("ELLIPSOID reported as unavailable")
	}
}
