package scale_elevation_corrector

import "testing"

func TestCorrectElevation(t *testing.T) {
	tests := []struct {
		scale, z, want float64
	}{
		{1, 120, 120},
		{2.5, 100, 250},
		{0, 3776, 0},
		{0.1, -50, -5},
	}
	for _, tt := range tests {
		c := NewScaleElevationCorrector(tt.scale)
		if got := c.CorrectElevation(139, 35, tt.z); got != tt.want {
			t.Errorf("scale %v: CorrectElevation(%v) = %v, want %v", tt.scale, tt.z, got, tt.want)
		}
	}
}
