package algorithm_manager

import (
	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters"
)

// Provides the collaborators a pipeline run is configured with
type AlgorithmManager interface {
	GetElevationCorrectionAlgorithm() converters.ElevationCorrector
	GetCoordinateConverterAlgorithm() converters.CoordinateConverter
}
