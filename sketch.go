package freehand

import "math/rand"

// Rough geometry generation: expand an idealized primitive into one or
// more slightly-off sub-paths, simulating a hand tracing the shape. This
// is the first perturbation stage; the sampler adds the higher frequency
// wave and wobble later.

// degenerateEps is the length below which a segment is considered
// zero-length and skipped instead of producing NaN offsets.
const degenerateEps = 1e-6

// Sketch expands a primitive into sketch sub-paths.
//
// A Line becomes one straight move+line pass, or two offset passes when
// style.MultiStroke is set. Curves become one or two cubic passes with
// control points perturbed proportionally to style.Bowing. A Polygon
// becomes independently perturbed edge passes, so corners deliberately do
// not meet.
//
// Degenerate primitives (zero length, non-finite coordinates) yield an
// empty path. With a seeded rng the output is reproducible.
func Sketch(p Primitive, style Style, rng *rand.Rand) *Path {
	path := NewPath()
	switch s := p.(type) {
	case Line:
		sketchLine(path, s, style, rng)
	case QuadBez:
		sketchCubic(path, s.Raise(), style, rng)
	case CubicBez:
		sketchCubic(path, s, style, rng)
	case Polygon:
		// Each edge is its own pass: a hand-drawn box never has
		// perfectly aligned corners.
		for _, e := range s.Edges() {
			sketchLine(path, e, style, rng)
		}
	}
	return path
}

// sketchLine appends 1 or 2 offset passes over a line segment.
func sketchLine(path *Path, l Line, style Style, rng *rand.Rand) {
	if !l.P0.IsFinite() || !l.P1.IsFinite() {
		Logger().Debug("degenerate line absorbed", "reason", "non-finite endpoint")
		return
	}
	length := l.Length()
	if length < degenerateEps {
		Logger().Debug("degenerate line absorbed", "reason", "zero length")
		return
	}

	maxOff := endpointOffset(length, style.Roughness)
	for pass := 0; pass < passCount(style); pass++ {
		p0 := perturb(l.P0, maxOff, rng)
		p1 := perturb(l.P1, maxOff, rng)
		path.MoveTo(p0.X, p0.Y)
		path.LineTo(p1.X, p1.Y)
	}
}

// sketchCubic appends 1 or 2 perturbed passes over a cubic segment.
// Endpoints jitter with roughness like line endpoints; control points
// additionally swing with bowing, which bends the re-traced curve.
func sketchCubic(path *Path, c CubicBez, style Style, rng *rand.Rand) {
	if !c.P0.IsFinite() || !c.P1.IsFinite() || !c.P2.IsFinite() || !c.P3.IsFinite() {
		Logger().Debug("degenerate curve absorbed", "reason", "non-finite control point")
		return
	}
	extent := c.ControlPolygonLength()
	if extent < degenerateEps {
		Logger().Debug("degenerate curve absorbed", "reason", "zero extent")
		return
	}

	endOff := endpointOffset(extent, style.Roughness)
	ctrlOff := endOff + controlOffset(extent, style.Bowing)
	for pass := 0; pass < passCount(style); pass++ {
		p0 := perturb(c.P0, endOff, rng)
		p1 := perturb(c.P1, ctrlOff, rng)
		p2 := perturb(c.P2, ctrlOff, rng)
		p3 := perturb(c.P3, endOff, rng)
		path.MoveTo(p0.X, p0.Y)
		path.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	}
}

// passCount returns how many hand-stroke passes the sketcher emits.
func passCount(style Style) int {
	if style.MultiStroke {
		return 2
	}
	return 1
}

// endpointOffset is the maximum random endpoint displacement for a segment
// of the given length. It grows with length but is capped so long fraction
// bars do not wander visibly.
func endpointOffset(length, roughness float64) float64 {
	return roughness * clamp(length*0.03, 0.1, 1.5)
}

// controlOffset is the extra displacement allowance for curve control points.
func controlOffset(extent, bowing float64) float64 {
	return bowing * clamp(extent*0.02, 0.1, 2.0)
}

// perturb displaces p by an independent uniform offset in each axis.
// A zero max yields p exactly, but the two rng draws still happen so the
// stream stays aligned across roughness settings.
func perturb(p Point, max float64, rng *rand.Rand) Point {
	dx := (rng.Float64()*2 - 1) * max
	dy := (rng.Float64()*2 - 1) * max
	return Point{X: p.X + dx, Y: p.Y + dy}
}
