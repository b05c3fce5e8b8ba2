package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Pixels int
	Error  error
}

// WorkerPool manages parallel tile rendering into a shared canvas
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	ctx         context.Context
	renderer    *TileRenderer
	canvas      *canvas.Canvas
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with room for queueSize tasks.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(ctx context.Context, renderer *TileRenderer, target *canvas.Canvas, queueSize, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			ctx:         ctx,
			renderer:    renderer,
			canvas:      target,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for the workers to drain it and closes
// the result queue. Results remain readable afterwards.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := w.ctx.Err(); err != nil {
			w.resultQueue <- TileResult{TaskID: task.TaskID, Error: err}
			continue
		}

		// Tiles have non-overlapping bounds, so writing to the shared canvas is safe
		pixels := w.renderer.RenderTileBounds(task.Tile.Bounds, w.canvas)
		w.resultQueue <- TileResult{TaskID: task.TaskID, Pixels: pixels}
	}
}
