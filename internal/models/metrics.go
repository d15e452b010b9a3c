package models

import "time"

// MetricResult is one named metric's series for a single queried window.
// Timestamps and Values are parallel arrays as returned by the service.
type MetricResult struct {
	Label      string
	Timestamps []time.Time
	Values     []float64
}
