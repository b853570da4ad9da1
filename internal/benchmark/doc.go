// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// They cover the hot paths of a build:
//   - feature-name synthesis and per-family name parsing
//   - SVG parsing
//   - icon tree traversal
//   - configuration loading and the end-to-end build
//
// To generate a profile, run:
//
//	go test -run '^$' -bench . -cpuprofile default.pgo ./internal/benchmark
package benchmark
