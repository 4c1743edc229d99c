package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels    int           // Number of pixels rendered
	TotalSamples   int           // Total number of camera rays traced
	AverageSamples float64       // Samples per pixel
	Workers        int           // Number of workers used
	Elapsed        time.Duration // Wall-clock render time
}
