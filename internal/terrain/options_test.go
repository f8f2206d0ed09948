package terrain

import (
	"math"
	"testing"
)

func TestParseAppearance(t *testing.T) {
	tests := []struct {
		in   string
		want Appearance
	}{
		{"flat", AppearanceFlat},
		{" WIREFRAME ", AppearanceWireframe},
		{"Wireframe", AppearanceWireframe},
		{"solid", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseAppearance(tt.in); got != tt.want {
				t.Errorf("ParseAppearance(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseProjection(t *testing.T) {
	if got := ParseProjection("ellipsoid"); got != ProjectionEllipsoid {
		t.Errorf("got %q", got)
	}
	if got := ParseProjection("proj4"); got != ProjectionProj4 {
		t.Errorf("got %q", got)
	}
	if got := ParseProjection("mercator"); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *MesherOptions)
		wantErr bool
	}{
		{"defaults", func(o *MesherOptions) {}, false},
		{"zero height scale", func(o *MesherOptions) { o.HeightScale = 0 }, false},
		{"negative height scale", func(o *MesherOptions) { o.HeightScale = -1 }, true},
		{"nan height scale", func(o *MesherOptions) { o.HeightScale = math.NaN() }, true},
		{"inf height scale", func(o *MesherOptions) { o.HeightScale = math.Inf(1) }, true},
		{"zero grid size", func(o *MesherOptions) { o.MaxGridSize = 0 }, true},
		{"grid size one", func(o *MesherOptions) { o.MaxGridSize = 1 }, false},
		{"opacity above one", func(o *MesherOptions) { o.Opacity = 1.5 }, true},
		{"unknown projection", func(o *MesherOptions) { o.Projection = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultMesherOptions()
			tt.mutate(opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUIDomain(t *testing.T) {
	opts := DefaultMesherOptions()
	if err := opts.ValidateUIDomain(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	opts.HeightScale = 0
	if err := opts.ValidateUIDomain(); err == nil {
		t.Errorf("height scale 0 accepted by the UI domain check")
	}
	opts = DefaultMesherOptions()
	opts.Opacity = 0.05
	if err := opts.ValidateUIDomain(); err == nil {
		t.Errorf("opacity 0.05 accepted by the UI domain check")
	}
}

func TestMaterial(t *testing.T) {
	opts := DefaultMesherOptions()
	m := opts.Material()
	if m.Appearance != AppearanceFlat || !m.Show {
		t.Errorf("unexpected default material %+v", m)
	}
	if m.Color != (Color{R: 0.5, G: 0.8, B: 0.5, A: DefaultOpacity}) {
		t.Errorf("unexpected color %+v", m.Color)
	}

	opts.ShowWireframe = true
	opts.ShowTerrain = false
	opts.Opacity = 0.3
	m = opts.Material()
	if m.Appearance != AppearanceWireframe || m.Show || m.Color.A != 0.3 {
		t.Errorf("unexpected material %+v", m)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	opts := DefaultMesherOptions()
	cp := opts.Copy()
	cp.HeightScale = 3
	if opts.HeightScale != DefaultHeightScale {
		t.Errorf("Copy shares state with the original")
	}
}
