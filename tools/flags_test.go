package tools

import (
	"testing"
)

func TestParseFlagsForCommandMesh(t *testing.T) {
	flags := ParseFlagsForCommandMesh([]string{
		"-W", "100", "-height", "80", "-bbox", "0,0,1,1", "-z", "2.5", "-wireframe",
		"-projection", "proj4", "-j", "4", "-metrics",
	})

	if *flags.Width != 100 || *flags.Height != 80 {
		t.Errorf("size = %dx%d, want 100x80", *flags.Width, *flags.Height)
	}
	if *flags.BBox != "0,0,1,1" || *flags.HeightScale != 2.5 {
		t.Errorf("bbox %q, height scale %v", *flags.BBox, *flags.HeightScale)
	}
	if !*flags.Wireframe || *flags.Hidden {
		t.Errorf("wireframe %v, hidden %v", *flags.Wireframe, *flags.Hidden)
	}
	if *flags.Projection != "proj4" || *flags.Workers != 4 || !*flags.Metrics {
		t.Errorf("projection %q, workers %d, metrics %v", *flags.Projection, *flags.Workers, *flags.Metrics)
	}
	if *flags.MaxGridSize != 50 || *flags.Opacity != 0.8 {
		t.Errorf("defaults changed: max grid size %d, opacity %v", *flags.MaxGridSize, *flags.Opacity)
	}
}

func TestParseFlagsForCommandFrameDefaults(t *testing.T) {
	flags := ParseFlagsForCommandFrame(nil)

	if *flags.Width != 256 || *flags.Height != 256 || *flags.Peak != 1500 {
		t.Errorf("defaults = %dx%d peak %v", *flags.Width, *flags.Height, *flags.Peak)
	}
	if *flags.Projection != "ELLIPSOID" || *flags.HeightScale != 1.0 {
		t.Errorf("projection %q, height scale %v", *flags.Projection, *flags.HeightScale)
	}
}
