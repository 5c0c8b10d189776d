// Package services implements the driving port interfaces.
// Services contain the core retrieval logic: domain detection, loading
// with retry and stale fallback, chunking, scoring and the escalating
// query strategies. They orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external I/O beyond the driven ports.
package services
