package data

import (
	"math"
	"testing"
)

func TestNewSyntheticRaster(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"odd", 11, 11},
		{"rectangular", 20, 9},
		{"minimum", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raster := NewSyntheticRaster(tt.width, tt.height, NewBoundingBox(0, 0, 1, 1), 500)
			if len(raster.Samples) != tt.width*tt.height {
				t.Fatalf("len(Samples) = %d, want %d", len(raster.Samples), tt.width*tt.height)
			}
			for i, v := range raster.Samples {
				if v < 0 || v > 500 || math.IsNaN(v) {
					t.Fatalf("sample %d = %v outside [0, 500]", i, v)
				}
			}
			if raster.SizeBytes != int64(tt.width*tt.height*8) {
				t.Errorf("SizeBytes = %d", raster.SizeBytes)
			}
		})
	}

	raster := NewSyntheticRaster(11, 11, NewBoundingBox(0, 0, 1, 1), 500)
	if raster.At(5, 5) != 500 {
		t.Errorf("peak = %v, want 500", raster.At(5, 5))
	}
	if raster.At(0, 0) >= raster.At(5, 5) {
		t.Error("corner is not lower than the center")
	}
}
