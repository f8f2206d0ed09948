package projection

import (
	"sync"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"gonum.org/v1/gonum/spatial/r3"
)

type Producer interface {
	Produce(work chan *WorkUnit, wg *sync.WaitGroup, grid *data.NormalizedGrid, positions []r3.Vec)
}

type Consumer interface {
	Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup)
}
