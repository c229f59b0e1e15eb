// Package freehand synthesizes hand-drawn-looking strokes from idealized
// geometric primitives.
//
// # Overview
//
// freehand is a Pure Go library in the GoGPU ecosystem. It takes a crisp
// primitive (a line segment, quadratic or cubic Bezier curve, or polygon
// outline) together with a style bundle and produces a closed, fillable
// polygon whose width varies along the path like a real pen stroke. The
// pipeline has four stages:
//
//  1. Style jitter: every numeric style field is perturbed within a
//     variance and clamped to a safe range, so repeated strokes are never
//     pixel-identical.
//  2. Sketching: the primitive is expanded into one or more wobbly
//     sub-paths, simulating a hand re-tracing the shape imperfectly.
//  3. Sampling: each sub-path is converted into pressure-tagged sample
//     points, with a sinusoidal wave and random wobble applied along the
//     path normal.
//  4. Outlining: the samples are turned into a variable-width outline
//     ring, wider where the synthetic pen pressure is higher.
//
// # Quick Start
//
//	import "github.com/gogpu/freehand"
//
//	line := freehand.NewLine(freehand.Pt(0, 0), freehand.Pt(100, 0))
//	style := freehand.DefaultStyle()
//
//	ring := freehand.SynthesizeStroke(line, style, freehand.Style{})
//
//	// Render the ring as a filled shape.
//	img := freehand.Rasterize([][]freehand.Point{ring}, 120, 20, color.Black)
//
// # Determinism
//
// By default each call draws fresh randomness from a process-seeded source.
// Pin Style.Seed (or pass WithSeed) to make the output reproducible; two
// calls with identical inputs and the same seed produce identical vertex
// lists.
//
// # Failure Semantics
//
// The pipeline has no error channel. Degenerate input (zero-length
// primitives, NaN coordinates, too few samples) produces a minimal but
// valid polygon, never a panic, so one bad shape cannot abort a batch.
// Only primitive construction rejects malformed data.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package freehand

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
