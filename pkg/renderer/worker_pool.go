package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// rowsPerTask is the scanline band size of one work unit. Small enough to
// keep all workers busy near the end of a render, large enough that channel
// traffic stays negligible.
const rowsPerTask = 8

// ScanlineTask is a band of image rows rendered by one worker. Bands never
// overlap, so each task writes to its own region of the shared image.
type ScanlineTask struct {
	ID         int
	YMin, YMax int         // Row range [YMin, YMax)
	Image      *image.RGBA // Shared output buffer
	Random     *rand.Rand  // Task-owned generator, seeded from the task ID
}

// TaskResult reports a completed scanline band
type TaskResult struct {
	ID      int
	Samples int
}

// RenderOptions configures the parallel render loop
type RenderOptions struct {
	NumWorkers int // 0 = detect hardware parallelism
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan ScanlineTask
	resultQueue chan TaskResult
	numWorkers  int
	wg          sync.WaitGroup
}

// DetectWorkers returns the configured worker count if positive, otherwise
// the machine's physical core count
func DetectWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	if count, err := cpu.Counts(false); err == nil && count > 0 {
		return count
	}
	return runtime.NumCPU()
}

// NewWorkerPool creates a pool of workers rendering with the given raytracer
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	config := raytracer.config
	maxTasks := (config.Height + rowsPerTask - 1) / rowsPerTask

	return &WorkerPool{
		raytracer:   raytracer,
		taskQueue:   make(chan ScanlineTask, maxTasks),
		resultQueue: make(chan TaskResult, maxTasks),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop shuts down the pool after all submitted tasks complete
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit queues a scanline task
func (wp *WorkerPool) Submit(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed task result
func (wp *WorkerPool) GetResult() (TaskResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the worker loop: tasks run to completion, one at a time
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		samples := wp.raytracer.RenderRows(task.YMin, task.YMax, task.Image, task.Random)
		wp.resultQueue <- TaskResult{ID: task.ID, Samples: samples}
	}
}

// Render renders the whole image in parallel and blocks until every
// scanline band has completed. Each task owns a deterministic generator
// seeded from the base seed plus the task ID, so the output image does not
// depend on worker count or scheduling order.
func Render(scene Scene, options RenderOptions, logger Logger) (*image.RGBA, RenderStats) {
	raytracer := NewRaytracer(scene)
	config := raytracer.config

	img := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))

	pool := NewWorkerPool(raytracer, DetectWorkers(options.NumWorkers))
	pool.Start()

	logger.Printf("Rendering %dx%d at %d samples/pixel, depth %d (%d workers)...\n",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, pool.NumWorkers())

	start := time.Now()

	numTasks := 0
	for y := 0; y < config.Height; y += rowsPerTask {
		yMax := min(y+rowsPerTask, config.Height)
		pool.Submit(ScanlineTask{
			ID:     numTasks,
			YMin:   y,
			YMax:   yMax,
			Image:  img,
			Random: rand.New(rand.NewSource(config.Seed + int64(numTasks))),
		})
		numTasks++
	}

	totalSamples := 0
	for i := 0; i < numTasks; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		totalSamples += result.Samples
	}
	pool.Stop()

	elapsed := time.Since(start)
	totalPixels := config.Width * config.Height

	stats := RenderStats{
		TotalPixels:    totalPixels,
		TotalSamples:   totalSamples,
		AverageSamples: float64(totalSamples) / float64(totalPixels),
		Workers:        pool.NumWorkers(),
		Elapsed:        elapsed,
	}

	logger.Printf("Render completed in %v (%.1f samples/pixel)\n", elapsed, stats.AverageSamples)

	return img, stats
}
