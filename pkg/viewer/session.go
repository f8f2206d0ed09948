package viewer

import (
	"sync"
	"sync/atomic"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/errkind"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/framer"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/metrics"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Keeps one renderer showing the mesh of the most recently submitted raster. Submit may be
// called concurrently: every raster gets the next generation and a result older than the newest
// submission is dropped instead of replacing a newer mesh.
type Session struct {
	mesher   pkg.IMesher
	renderer Renderer
	metrics  *metrics.Metrics

	generation atomic.Uint64

	mu         sync.Mutex
	opts       *terrain.MesherOptions
	presented  uint64
	handle     data.MeshHandle
	frame      data.ViewFrame
	lastRaster *data.RasterGrid
}

// Instantiates a new Session. A nil opts starts from the default settings.
func NewSession(mesher pkg.IMesher, renderer Renderer, opts *terrain.MesherOptions, m *metrics.Metrics) *Session {
	if opts == nil {
		opts = terrain.DefaultMesherOptions()
	}
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	return &Session{
		mesher:   mesher,
		renderer: renderer,
		metrics:  m,
		opts:     opts.Copy(),
		frame:    framer.DefaultViewFrame(),
	}
}

// Converts a freshly decoded raster and displays it. decodeErr is the failure reported by the
// decoder, if any. It returns a nil result without error when a newer raster superseded this one.
func (s *Session) Submit(raster *data.RasterGrid, decodeErr error) (*pkg.Result, error) {
	if decodeErr != nil {
		err := errkind.FromDecoder(decodeErr)
		glog.Warningf("raster not decoded: %v", err)
		return nil, err
	}

	generation := s.generation.Add(1)
	opts := s.Options()

	result, err := s.mesher.Run(generation, raster, opts)
	if err != nil {
		return nil, err
	}

	presented, err := s.present(result, raster)
	if err != nil || !presented {
		return nil, err
	}
	return result, nil
}

// Displays the result unless a newer generation was submitted or presented meanwhile. The new
// mesh is added before the previous one is removed, a failure to add leaves the scene untouched.
func (s *Session) Present(result *pkg.Result) (bool, error) {
	return s.present(result, nil)
}

func (s *Session) present(result *pkg.Result, raster *data.RasterGrid) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.Generation < s.generation.Load() || result.Generation <= s.presented {
		glog.V(1).Infof("dropping result of generation %d, generation %d is newer", result.Generation, s.generation.Load())
		s.metrics.RecordStale()
		return false, nil
	}

	handle, err := s.renderer.AddMesh(result.Mesh, result.Material)
	if err != nil {
		return false, errors.Wrapf(err, "cannot display mesh of generation %d", result.Generation)
	}

	if !s.handle.IsZero() {
		if err := s.renderer.RemoveMesh(s.handle); err != nil {
			glog.Warningf("cannot remove mesh %s: %v", s.handle, err)
		}
	}
	s.handle = handle
	s.presented = result.Generation
	s.frame = result.Frame
	if raster != nil {
		s.lastRaster = raster
	}
	s.metrics.SetPresentedGeneration(result.Generation)

	if err := s.renderer.SetView(result.Frame); err != nil {
		return true, errors.Wrap(err, "cannot move camera")
	}
	return true, nil
}

// Moves the camera back to the frame of the displayed mesh, or to the default location
// when nothing has been displayed yet
func (s *Session) ResetView() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.renderer.SetView(s.frame)
}

// Replaces the settings and converts the last displayed raster again with them
func (s *Session) UpdateSettings(opts *terrain.MesherOptions) (*pkg.Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, errkind.Wrap(errkind.InvalidOptions, err, "invalid settings")
	}

	s.mu.Lock()
	s.opts = opts.Copy()
	raster := s.lastRaster
	s.mu.Unlock()

	if raster == nil {
		return nil, nil
	}
	return s.Submit(raster, nil)
}

// Restores the default settings, see UpdateSettings
func (s *Session) ResetSettings() (*pkg.Result, error) {
	return s.UpdateSettings(terrain.DefaultMesherOptions())
}

// Removes the displayed mesh from the renderer
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle.IsZero() {
		return nil
	}
	err := s.renderer.RemoveMesh(s.handle)
	s.handle = data.MeshHandle{}
	return err
}

// Returns a copy of the current settings
func (s *Session) Options() *terrain.MesherOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Copy()
}

// Returns the generation of the displayed mesh, 0 before any
func (s *Session) PresentedGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presented
}

func (s *Session) Frame() data.ViewFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Allocates a generation without running the pipeline, for callers driving Present themselves
func (s *Session) NextGeneration() uint64 {
	return s.generation.Add(1)
}
