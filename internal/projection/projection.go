package projection

import (
	"runtime"
	"sync"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/converters"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Projects all the vertices of the grid to cartesian positions using numConsumers goroutines.
// Returns only when every goroutine has finished. numConsumers <= 0 means one per CPU.
func ProjectGrid(grid *data.NormalizedGrid, coordinateConverter converters.CoordinateConverter, numConsumers int) ([]r3.Vec, error) {
	if numConsumers <= 0 {
		numConsumers = runtime.NumCPU()
	}
	if numConsumers > grid.GridHeight {
		numConsumers = grid.GridHeight
	}
	positions := make([]r3.Vec, len(grid.Vertices))

	// init channel where to submit work with a buffer 5 times greater than the number of consumers
	workChannel := make(chan *WorkUnit, numConsumers*5)

	// every consumer reports at most one error, so the buffer never blocks them
	errorChannel := make(chan error, numConsumers)

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	producer := NewStandardProducer()
	go producer.Produce(workChannel, &waitGroup, grid, positions)

	for i := 0; i < numConsumers; i++ {
		waitGroup.Add(1)
		consumer := NewStandardConsumer(coordinateConverter)
		go consumer.Consume(workChannel, errorChannel, &waitGroup)
	}

	waitGroup.Wait()
	close(errorChannel)

	var firstErr error
	for err := range errorChannel {
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, errors.Wrap(firstErr, "errors raised while projecting the mesh")
	}

	return positions, nil
}
