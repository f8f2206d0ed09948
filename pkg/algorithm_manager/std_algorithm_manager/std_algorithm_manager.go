package std_algorithm_manager

import (
	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters/elevation/scale_elevation_corrector"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters/ellipsoid"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg/algorithm_manager"
)

type converterFactory func() (converters.CoordinateConverter, error)

// projections available in this build, extended by build tagged files
var converterFactories = map[terrain.Projection]converterFactory{
	terrain.ProjectionEllipsoid: func() (converters.CoordinateConverter, error) {
		return ellipsoid.NewEllipsoidCoordinateConverter(), nil
	},
}

type StandardAlgorithmManager struct {
	options             *terrain.MesherOptions
	coordinateConverter converters.CoordinateConverter
	elevationCorrector  converters.ElevationCorrector
}

// Instantiates the collaborators described by opts. Fails with InvalidOptions if the requested
// projection is not available in this build.
func NewAlgorithmManager(opts *terrain.MesherOptions) (algorithm_manager.AlgorithmManager, error) {
	factory, ok := converterFactories[opts.Projection]
	if !ok {
		return nil, errkind.New(errkind.InvalidOptions, "projection %q is not available in this build", opts.Projection)
	}
	coordinateConverter, err := factory()
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidOptions, err, "cannot initialize projection "+string(opts.Projection))
	}

	return &StandardAlgorithmManager{
		options:             opts,
		coordinateConverter: coordinateConverter,
		elevationCorrector:  scale_elevation_corrector.NewScaleElevationCorrector(opts.HeightScale),
	}, nil
}

// Reports whether the projection can be used in this build
func IsProjectionAvailable(projection terrain.Projection) bool {
	_, ok := converterFactories[projection]
	return ok
}

func (sam *StandardAlgorithmManager) GetElevationCorrectionAlgorithm() converters.ElevationCorrector {
	return sam.elevationCorrector
}

func (sam *StandardAlgorithmManager) GetCoordinateConverterAlgorithm() converters.CoordinateConverter {
	return sam.coordinateConverter
}
