package main

import (
	"math"
	"strings"
	"testing"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/cesium_terrain_mesher/tools"
)

func TestNewFrameReport(t *testing.T) {
	report := newFrameReport(data.ViewFrame{
		CenterLon:      139.691712345,
		CenterLat:      35.689512345,
		CameraAltitude: 222500.126,
		Pitch:          -math.Pi / 4,
	})

	want := frameReport{
		CenterLon:      139.691712,
		CenterLat:      35.689512,
		CameraAltitude: 222500.13,
		Pitch:          -0.785398,
	}
	if report != want {
		t.Errorf("newFrameReport() = %+v, want %+v", report, want)
	}
}

func TestRunReportJSON(t *testing.T) {
	raster := data.NewSyntheticRaster(100, 100, data.NewBoundingBox(139, 35, 140, 36), 1500)
	result, err := pkg.NewMesher(std_algorithm_manager.NewAlgorithmManager, nil).Run(1, raster, terrain.DefaultMesherOptions())
	if err != nil {
		t.Fatal(err)
	}

	out := tools.FmtJSONString(newRunReport(result))
	for _, fragment := range []string{
		`"vertex_count":2500`,
		`"triangle_count":4802`,
		`"sample_rate":2`,
		`"states":["Idle","Sampling","Normalizing","Building","Framing","Ready"]`,
		`"appearance":"FLAT"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("report %s lacks %s", out, fragment)
		}
	}
}
