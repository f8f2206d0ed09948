package framer

import (
	"math"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/normalizer"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

const (
	// uniform approximation used for both axes
	MetersPerDegree = 111000.0

	MinDistance          = 1000.0
	RangeDistanceFactor  = 2.0
	HeightDistanceFactor = 5.0

	DefaultCenterLon      = 139.6917
	DefaultCenterLat      = 35.6895
	DefaultCameraAltitude = 100000.0
)

// Fixed downward camera angle, -45 degrees
var DefaultPitch = -math.Pi / 4

// Returns the frame used before any mesh is shown and whenever a computed frame is invalid
func DefaultViewFrame() data.ViewFrame {
	return data.ViewFrame{
		CenterLon:      DefaultCenterLon,
		CenterLat:      DefaultCenterLat,
		CameraAltitude: DefaultCameraAltitude,
		Heading:        0,
		Pitch:          DefaultPitch,
		Roll:           0,
	}
}

// Computes a camera that looks at the center of bbox from far enough to see the whole extent.
// minHeight and maxHeight are the unscaled height range of the mesh.
func Frame(bbox data.BoundingBox, minHeight float64, maxHeight float64, heightScale float64) data.ViewFrame {
	centerLon, centerLat := bbox.Center()
	centerLon = normalizer.WrapLongitude(centerLon)
	centerLat = normalizer.ClampLatitude(centerLat)

	maxRange := math.Max(bbox.LonRange(), bbox.LatRange())
	centerHeight := (minHeight + maxHeight) / 2 * heightScale
	maxHeightScaled := maxHeight * heightScale

	distance := floats.Max([]float64{
		maxRange * MetersPerDegree * RangeDistanceFactor,
		maxHeightScaled * HeightDistanceFactor,
		MinDistance,
	})

	frame := data.ViewFrame{
		CenterLon:      centerLon,
		CenterLat:      centerLat,
		CameraAltitude: centerHeight + distance,
		Heading:        0,
		Pitch:          DefaultPitch,
		Roll:           0,
	}

	if !IsValid(frame) {
		glog.Warningf("computed view frame %+v is invalid, falling back to the default location", frame)
		return DefaultViewFrame()
	}
	return frame
}

// Reports whether the frame can be handed to a renderer
func IsValid(frame data.ViewFrame) bool {
	for _, v := range []float64{frame.CenterLon, frame.CenterLat, frame.CameraAltitude, frame.Heading, frame.Pitch, frame.Roll} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return frame.CenterLon >= -180 && frame.CenterLon <= 180 &&
		frame.CenterLat >= -90 && frame.CenterLat <= 90
}
