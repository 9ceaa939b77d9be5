// Package compute provides pluggable backends for escape-time grid
// computation.
//
// The package automatically selects the best available backend:
//
//   - CPU: row-parallel workers, one goroutine per core
//
// Per-pixel escape counts are independent, so backends may partition the
// grid freely; correctness never depends on evaluation order.
//
//	backend := compute.GetBackend()
//	backend.Escape(bounds, width, height, maxIter, counts, nil)
package compute
