package pkg

import (
	"time"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/framer"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/mesh"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/metrics"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/normalizer"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/sampler"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg/algorithm_manager"
	"github.com/golang/glog"
)

type IMesher interface {
	Run(generation uint64, raster *data.RasterGrid, opts *terrain.MesherOptions) (*Result, error)
}

// Builds the collaborators of a run from its options
type AlgorithmManagerProvider func(opts *terrain.MesherOptions) (algorithm_manager.AlgorithmManager, error)

// Everything the renderer needs to display one raster
type Result struct {
	Generation uint64
	Mesh       *data.TerrainMesh
	Frame      data.ViewFrame
	Material   terrain.Material
	Summary    Summary
	History    []State
}

// Statistics of a successful run
type Summary struct {
	Generation    uint64        `json:"generation"`
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	SampleRate    int           `json:"sample_rate"`
	GridWidth     int           `json:"grid_width"`
	GridHeight    int           `json:"grid_height"`
	VertexCount   int           `json:"vertex_count"`
	TriangleCount int           `json:"triangle_count"`
	MinHeight     float64       `json:"min_height"`
	MaxHeight     float64       `json:"max_height"`
	RepairedCells int           `json:"repaired_cells"`
	Oversized     bool          `json:"oversized"`
	Elapsed       time.Duration `json:"elapsed"`
}

type Mesher struct {
	algorithmManagerProvider AlgorithmManagerProvider
	metrics                  *metrics.Metrics
}

// Instantiates a new Mesher. A nil m records into unregistered metrics.
func NewMesher(algorithmManagerProvider AlgorithmManagerProvider, m *metrics.Metrics) IMesher {
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	return &Mesher{
		algorithmManagerProvider: algorithmManagerProvider,
		metrics:                  m,
	}
}

// Converts the raster into a mesh and a camera frame. The run is synchronous, fatal errors are
// returned as *RunError and produce no mesh.
func (mesher *Mesher) Run(generation uint64, raster *data.RasterGrid, opts *terrain.MesherOptions) (*Result, error) {
	start := time.Now()
	run := newPipelineRun(generation)

	result, err := mesher.execute(run, raster, opts)
	elapsed := time.Since(start)
	mesher.metrics.RecordRun(err, elapsed)

	if err != nil {
		failedIn := run.State()
		run.transition(StateFailed)
		glog.Warningf("run %d failed in state %s: %v", generation, failedIn, err)
		return nil, &RunError{
			Generation: generation,
			Stage:      failedIn,
			History:    run.History(),
			Err:        err,
		}
	}

	result.Summary.Elapsed = elapsed
	result.History = run.History()
	glog.Infof("run %d ready: %dx%d raster, sample rate %d, %d vertices, %d triangles in %s",
		generation, result.Summary.Width, result.Summary.Height, result.Summary.SampleRate,
		result.Summary.VertexCount, result.Summary.TriangleCount, elapsed)

	return result, nil
}

func (mesher *Mesher) execute(run *PipelineRun, raster *data.RasterGrid, opts *terrain.MesherOptions) (*Result, error) {
	run.transition(StateSampling)

	// a broken box fails the run whatever the raster looks like
	if raster != nil {
		if err := normalizer.ValidateBoundingBox(raster.BBox); err != nil {
			return nil, err
		}
	}
	if opts == nil {
		return nil, errkind.New(errkind.InvalidOptions, "no options")
	}
	if err := opts.Validate(); err != nil {
		return nil, errkind.Wrap(errkind.InvalidOptions, err, "invalid mesher options")
	}

	glog.V(1).Infoln("> sampling raster...")
	sampled, err := sampler.Sample(raster, opts.MaxGridSize)
	if err != nil {
		return nil, err
	}
	if sampled.Oversized {
		mesher.metrics.IncrementOversizedInput()
	}

	algorithmManager, err := mesher.algorithmManagerProvider(opts)
	if err != nil {
		return nil, err
	}
	defer algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	run.transition(StateNormalizing)
	glog.V(1).Infof("> normalizing %dx%d grid...", sampled.GridWidth, sampled.GridHeight)
	grid, err := normalizer.NewCoordinateNormalizer(algorithmManager.GetElevationCorrectionAlgorithm()).Normalize(sampled)
	if err != nil {
		return nil, err
	}
	mesher.metrics.AddRepairedCells(grid.Repaired)

	run.transition(StateBuilding)
	glog.V(1).Infoln("> building mesh...")
	builder := mesh.NewBuilder(algorithmManager.GetCoordinateConverterAlgorithm(), opts.Workers)
	terrainMesh, err := builder.Build(grid)
	if err != nil {
		return nil, err
	}
	mesher.metrics.SetMeshSize(terrainMesh.VertexCount(), terrainMesh.TriangleCount())

	run.transition(StateFraming)
	frame := framer.Frame(raster.BBox, grid.MinHeight, grid.MaxHeight, opts.HeightScale)

	run.transition(StateReady)

	return &Result{
		Generation: run.Generation,
		Mesh:       terrainMesh,
		Frame:      frame,
		Material:   opts.Material(),
		Summary: Summary{
			Generation:    run.Generation,
			Width:         raster.Width,
			Height:        raster.Height,
			SampleRate:    sampled.SampleRate,
			GridWidth:     grid.GridWidth,
			GridHeight:    grid.GridHeight,
			VertexCount:   terrainMesh.VertexCount(),
			TriangleCount: terrainMesh.TriangleCount(),
			MinHeight:     grid.MinHeight,
			MaxHeight:     grid.MaxHeight,
			RepairedCells: grid.Repaired,
			Oversized:     sampled.Oversized,
		},
	}, nil
}
