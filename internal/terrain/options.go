package terrain

import (
	"fmt"
	"math"
	"strings"
)

type Appearance string
type Projection string

const (
	// Draws filled triangles with the terrain material
	AppearanceFlat Appearance = "FLAT"

	// Draws only the triangle edges
	AppearanceWireframe Appearance = "WIREFRAME"
)

const (
	// Pure Go WGS84 ellipsoid math
	ProjectionEllipsoid Projection = "ELLIPSOID"

	// proj.4 EPSG:4326 -> EPSG:4978 transform, needs the proj4 build tag
	ProjectionProj4 Projection = "PROJ4"
)

const (
	DefaultHeightScale = 1.0
	DefaultOpacity     = 0.8
	DefaultMaxGridSize = 50

	MinHeightScale = 0.1
	MaxHeightScale = 10.0
	MinOpacity     = 0.1
	MaxOpacity     = 1.0
)

func (a Appearance) String() string {
	if a == AppearanceFlat {
		return "FLAT"
	} else if a == AppearanceWireframe {
		return "WIREFRAME"
	}
	return ""
}

func ParseAppearance(value string) Appearance {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	if normalizedValue == "FLAT" {
		return AppearanceFlat
	} else if normalizedValue == "WIREFRAME" {
		return AppearanceWireframe
	}
	return ""
}

func ParseProjection(value string) Projection {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	if normalizedValue == "ELLIPSOID" {
		return ProjectionEllipsoid
	} else if normalizedValue == "PROJ4" {
		return ProjectionProj4
	}
	return ""
}

// Contains the options needed to turn a raster into a terrain mesh
type MesherOptions struct {
	HeightScale   float64    // Multiplier applied to every raw height
	Opacity       float64    // Alpha of the terrain material, not used by the geometry
	MaxGridSize   int        // Target number of samples along the shorter raster side
	ShowWireframe bool       // Draw the mesh as a wireframe instead of filled triangles
	ShowTerrain   bool       // Whether the renderer should display the mesh at all
	Projection    Projection // Geodetic to cartesian projector to use
	Workers       int        // Number of goroutines projecting mesh rows, <= 0 means one per CPU
}

// Returns the settings the viewer starts with, also used to reset them
func DefaultMesherOptions() *MesherOptions {
	return &MesherOptions{
		HeightScale:   DefaultHeightScale,
		Opacity:       DefaultOpacity,
		MaxGridSize:   DefaultMaxGridSize,
		ShowWireframe: false,
		ShowTerrain:   true,
		Projection:    ProjectionEllipsoid,
		Workers:       0,
	}
}

// Checks the options the pipeline relies on. The UI slider domains are enforced by ValidateUIDomain.
func (opt *MesherOptions) Validate() error {
	if math.IsNaN(opt.HeightScale) || math.IsInf(opt.HeightScale, 0) || opt.HeightScale < 0 {
		return fmt.Errorf("height scale must be a finite non negative number, got %v", opt.HeightScale)
	}
	if opt.MaxGridSize < 1 {
		return fmt.Errorf("max grid size must be at least 1, got %d", opt.MaxGridSize)
	}
	if math.IsNaN(opt.Opacity) || opt.Opacity < 0 || opt.Opacity > 1 {
		return fmt.Errorf("opacity must be in [0, 1], got %v", opt.Opacity)
	}
	if opt.Projection != ProjectionEllipsoid && opt.Projection != ProjectionProj4 {
		return fmt.Errorf("unknown projection %q", opt.Projection)
	}
	return nil
}

// Checks heightScale and opacity against the ranges offered by the settings panel
func (opt *MesherOptions) ValidateUIDomain() error {
	if opt.HeightScale < MinHeightScale || opt.HeightScale > MaxHeightScale {
		return fmt.Errorf("height scale must be in [%v, %v], got %v", MinHeightScale, MaxHeightScale, opt.HeightScale)
	}
	if opt.Opacity < MinOpacity || opt.Opacity > MaxOpacity {
		return fmt.Errorf("opacity must be in [%v, %v], got %v", MinOpacity, MaxOpacity, opt.Opacity)
	}
	return nil
}

// Returns the material the renderer should draw the mesh with
func (opt *MesherOptions) Material() Material {
	appearance := AppearanceFlat
	if opt.ShowWireframe {
		appearance = AppearanceWireframe
	}
	return Material{
		Color:      Color{R: 0.5, G: 0.8, B: 0.5, A: opt.Opacity},
		Appearance: appearance,
		Show:       opt.ShowTerrain,
	}
}

func (opt *MesherOptions) Copy() *MesherOptions {
	newOpt := *opt
	return &newOpt
}
