package metrics

import (
	"time"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeReady  = "ready"
	OutcomeFailed = "failed"
	OutcomeStale  = "stale"
)

// Metrics holds the Prometheus metrics of the mesher
type Metrics struct {
	runs           *prometheus.CounterVec
	runDuration    prometheus.Histogram
	repairedCells  prometheus.Counter
	oversizedInput prometheus.Counter
	meshVertices   prometheus.Gauge
	meshTriangles  prometheus.Gauge
	generation     prometheus.Gauge
}

// NewMetrics creates the mesher metrics and registers them with reg. A nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mesher_runs_total",
				Help: "Total number of pipeline runs by outcome and error kind",
			},
			[]string{"outcome", "kind"},
		),
		runDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mesher_run_duration_seconds",
				Help:    "Duration of a pipeline run in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
		repairedCells: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "mesher_repaired_cells_total",
				Help: "Total number of grid cells whose values were replaced",
			},
		),
		oversizedInput: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "mesher_oversized_inputs_total",
				Help: "Total number of rasters above the advisory size",
			},
		),
		meshVertices: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mesher_mesh_vertices",
				Help: "Vertex count of the last built mesh",
			},
		),
		meshTriangles: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mesher_mesh_triangles",
				Help: "Triangle count of the last built mesh",
			},
		),
		generation: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mesher_presented_generation",
				Help: "Generation of the mesh currently presented",
			},
		),
	}
}

// RecordRun counts a finished run. err is nil for a successful run.
func (m *Metrics) RecordRun(err error, elapsed time.Duration) {
	if err == nil {
		m.runs.WithLabelValues(OutcomeReady, "").Inc()
	} else {
		m.runs.WithLabelValues(OutcomeFailed, errkind.KindOf(err).String()).Inc()
	}
	m.runDuration.Observe(elapsed.Seconds())
}

// RecordStale counts a result dropped because a newer one was submitted
func (m *Metrics) RecordStale() {
	m.runs.WithLabelValues(OutcomeStale, "").Inc()
}

func (m *Metrics) AddRepairedCells(count int) {
	m.repairedCells.Add(float64(count))
}

func (m *Metrics) IncrementOversizedInput() {
	m.oversizedInput.Inc()
}

// SetMeshSize records the size of the last built mesh
func (m *Metrics) SetMeshSize(vertices int, triangles int) {
	m.meshVertices.Set(float64(vertices))
	m.meshTriangles.Set(float64(triangles))
}

func (m *Metrics) SetPresentedGeneration(generation uint64) {
	m.generation.Set(float64(generation))
}
