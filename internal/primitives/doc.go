// Package primitives provides the foundational, dependency-free data structures
// behind protectedx.
//
// This package uses ONLY the Go standard library. Serialization adapters live in
// internal/production.
//
// Core invariants:
//   - Queue preserves insertion order and tolerates mutation during a sweep
//   - HierarchyConfig chains are acyclic and root-first
package primitives
