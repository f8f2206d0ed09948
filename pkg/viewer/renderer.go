package viewer

import (
	"sync"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Scene the meshes are displayed in. A handle returned by AddMesh identifies exactly that mesh
// until it is removed.
type Renderer interface {
	AddMesh(mesh *data.TerrainMesh, material terrain.Material) (data.MeshHandle, error)
	RemoveMesh(handle data.MeshHandle) error
	SetView(frame data.ViewFrame) error
}

// Renderer that only logs what it is asked to display. Used by the command line tool.
type LogRenderer struct {
	meshes map[data.MeshHandle]*data.TerrainMesh
	view   data.ViewFrame
	sync.Mutex
}

func NewLogRenderer() *LogRenderer {
	return &LogRenderer{
		meshes: make(map[data.MeshHandle]*data.TerrainMesh),
	}
}

func (r *LogRenderer) AddMesh(mesh *data.TerrainMesh, material terrain.Material) (data.MeshHandle, error) {
	r.Lock()
	defer r.Unlock()

	handle := data.NewMeshHandle()
	r.meshes[handle] = mesh
	glog.Infof("add mesh %s: %d vertices, %d triangles, %s material, visible %v",
		handle, mesh.VertexCount(), mesh.TriangleCount(), material.Appearance, material.Show)
	return handle, nil
}

func (r *LogRenderer) RemoveMesh(handle data.MeshHandle) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.meshes[handle]; !ok {
		return errors.Errorf("unknown mesh %s", handle)
	}
	delete(r.meshes, handle)
	glog.Infof("remove mesh %s", handle)
	return nil
}

func (r *LogRenderer) SetView(frame data.ViewFrame) error {
	r.Lock()
	defer r.Unlock()

	r.view = frame
	glog.Infof("view centered on (%.6f, %.6f) from %.1f m", frame.CenterLon, frame.CenterLat, frame.CameraAltitude)
	return nil
}

// Returns the number of meshes currently displayed
func (r *LogRenderer) MeshCount() int {
	r.Lock()
	defer r.Unlock()
	return len(r.meshes)
}

func (r *LogRenderer) View() data.ViewFrame {
	r.Lock()
	defer r.Unlock()
	return r.view
}
