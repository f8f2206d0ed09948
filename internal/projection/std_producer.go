package projection

import (
	"sync"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"gonum.org/v1/gonum/spatial/r3"
)

type StandardProducer struct{}

func NewStandardProducer() *StandardProducer {
	return &StandardProducer{}
}

// Splits the grid in rows and submits one WorkUnit per row to the provided work channel.
// Closes the channel when all work is submitted.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup, grid *data.NormalizedGrid, positions []r3.Vec) {
	for yIndex := 0; yIndex < grid.GridHeight; yIndex++ {
		work <- &WorkUnit{
			Row:       yIndex,
			Vertices:  grid.Row(yIndex),
			Positions: positions[yIndex*grid.GridWidth : (yIndex+1)*grid.GridWidth],
		}
	}
	close(work)
	wg.Done()
}
