package geo

import (
	"context"
	"sync"

	"fleetplan/internal/domain/entity"

	"github.com/pkg/errors"
)

const defaultWorkers = 8

type rowResult struct {
	index int
	cells []float64 // distances from index to every j > index
}

// BuildMatrix computes the full distance matrix for coords, fanning rows out to
// a bounded pool of workers. Only the upper triangle is computed and then
// mirrored, so the result is exactly symmetric with a zero diagonal.
func BuildMatrix(ctx context.Context, coords []entity.Coordinate, workers int) (entity.DistanceMatrix, error) {
	n := len(coords)
	matrix := make(entity.DistanceMatrix, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	if n <= 1 {
		return matrix, nil
	}

	rowCh := make(chan int, n)
	resultCh := make(chan rowResult, n)

	workerGroup := spawnRowWorkers(ctx, workerCount(workers, n), rowCh, resultCh, coords)
	go dispatchRows(ctx, rowCh, n)
	collectRows(resultCh, matrix, workerGroup)

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "distance matrix calculation canceled")
	}

	return matrix, nil
}

func workerCount(requested, rows int) int {
	if requested <= 0 {
		requested = defaultWorkers
	}
	if rows < requested {
		return rows
	}

	return requested
}

func spawnRowWorkers(
	ctx context.Context,
	workerCount int,
	rowCh <-chan int,
	resultCh chan<- rowResult,
	coords []entity.Coordinate,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for range workerCount {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for i := range rowCh {
				if ctx.Err() != nil {
					return
				}

				cells := make([]float64, len(coords)-i-1)
				for k := range cells {
					cells[k] = HaversineKm(coords[i], coords[i+1+k])
				}
				resultCh <- rowResult{index: i, cells: cells}
			}
		}()
	}

	return &workerGroup
}

func dispatchRows(ctx context.Context, rowCh chan<- int, rows int) {
	defer close(rowCh)

	for i := range rows {
		if ctx.Err() != nil {
			return
		}

		rowCh <- i
	}
}

func collectRows(resultCh chan rowResult, matrix entity.DistanceMatrix, workerGroup *sync.WaitGroup) {
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		i := res.index
		for k, d := range res.cells {
			j := i + 1 + k
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}
}
