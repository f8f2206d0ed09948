package projection

import (
	"sync"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters"
	"github.com/pkg/errors"
)

type StandardConsumer struct {
	coordinateConverter converters.CoordinateConverter
}

func NewStandardConsumer(coordinateConverter converters.CoordinateConverter) *StandardConsumer {
	return &StandardConsumer{
		coordinateConverter: coordinateConverter,
	}
}

// Continually consumes WorkUnits submitted to a work channel writing the projected positions of each row.
// After the first error the consumer reports it on the error channel and keeps draining the work
// channel without doing work, so that the producer never blocks.
func (c *StandardConsumer) Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup) {
	defer waitGroup.Done()

	failed := false
	for work := range workchan {
		if failed {
			continue
		}
		if err := c.doWork(work); err != nil {
			errchan <- err
			failed = true
		}
	}
}

// Projects every vertex of the work unit row
func (c *StandardConsumer) doWork(workUnit *WorkUnit) error {
	for i, vertex := range workUnit.Vertices {
		position, err := c.coordinateConverter.ConvertToWGS84Cartesian(vertex.Lon, vertex.Lat, vertex.Height)
		if err != nil {
			return errors.Wrapf(err, "cannot project row %d column %d", workUnit.Row, i)
		}
		workUnit.Positions[i] = position
	}
	return nil
}
