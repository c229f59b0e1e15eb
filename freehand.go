package freehand

import "math/rand"

// Option configures a synthesis call.
// Use functional options to control the randomness source.
//
// Example:
//
//	// Fresh randomness (default)
//	ring := freehand.SynthesizeStroke(line, style, variance)
//
//	// Reproducible output
//	ring := freehand.SynthesizeStroke(line, style, variance, freehand.WithSeed(42))
type Option func(*synthOptions)

// synthOptions holds optional configuration for a synthesis call.
type synthOptions struct {
	rng  *rand.Rand
	seed *int64
}

// WithRandom supplies an explicit random generator. The caller keeps
// ownership; passing one generator to concurrent calls is the caller's
// race to manage, so batch processors should hand each goroutine its own.
func WithRandom(r *rand.Rand) Option {
	return func(o *synthOptions) {
		o.rng = r
	}
}

// WithSeed pins the random stream for this call, overriding Style.Seed.
// Two calls with the same inputs and seed produce identical vertex lists.
func WithSeed(seed int64) Option {
	return func(o *synthOptions) {
		s := seed
		o.seed = &s
	}
}

// fallbackDotRadius is the radius of the polygon emitted for a fully
// degenerate primitive: valid, visible under magnification, near-zero area.
const fallbackDotRadius = 0.5

// SynthesizeStroke runs the full pipeline and returns one closed ring.
//
// The style is jittered within variance and clamped, the primitive is
// sketched in a single pass (MultiStroke is ignored here; use
// SynthesizeStrokes for overlapping passes), the sketch is sampled into
// pressure-tagged points, and the samples are outlined into a
// variable-width ring. For a polygon primitive the independently sketched
// edges are joined into one continuous stroke, like a box drawn without
// lifting the pen.
//
// The result is never nil. Degenerate input (zero-length primitive,
// non-finite coordinates) produces a minimal dot ring at the primitive's
// anchor, or an empty ring when no finite anchor exists. The function
// never panics on bad numeric input.
func SynthesizeStroke(p Primitive, base, variance Style, opts ...Option) []Point {
	base.MultiStroke = false
	style, runs := synthesize(p, base, variance, opts...)

	var joined []StrokePoint
	for _, run := range runs {
		joined = append(joined, run...)
	}
	if ring := Outline(joined, style); len(ring) > 0 {
		return ring
	}
	return degenerateRing(p)
}

// SynthesizeStrokes is the multi-ring variant: it honors
// Style.MultiStroke and returns one ring per sketch pass, so overlapping
// hand strokes render as genuinely separate filled shapes. Polygon edges
// likewise come back as independent rings with deliberately mismatched
// corners.
//
// The result is never nil; degenerate input yields a single minimal ring
// as in SynthesizeStroke, or no rings when no finite anchor exists.
func SynthesizeStrokes(p Primitive, base, variance Style, opts ...Option) [][]Point {
	style, runs := synthesize(p, base, variance, opts...)

	rings := make([][]Point, 0, len(runs))
	for _, run := range runs {
		if ring := Outline(run, style); len(ring) > 0 {
			rings = append(rings, ring)
		}
	}
	if len(rings) == 0 {
		if ring := degenerateRing(p); len(ring) > 0 {
			rings = append(rings, ring)
		}
	}
	return rings
}

// synthesize runs the shared front half of the pipeline: rng resolution,
// style jitter, sketching, and sampling.
func synthesize(p Primitive, base, variance Style, opts ...Option) (Style, [][]StrokePoint) {
	var o synthOptions
	for _, opt := range opts {
		opt(&o)
	}
	rng := resolveRand(o, base)

	style := JitterStyle(base, variance, rng)
	sketch := Sketch(p, style, rng)
	return style, SamplePath(sketch, style, rng)
}

// resolveRand picks the random source for one call.
// Precedence: WithRandom > WithSeed > Style.Seed (non-zero) > fresh.
func resolveRand(o synthOptions, base Style) *rand.Rand {
	switch {
	case o.rng != nil:
		return o.rng
	case o.seed != nil:
		return newSeededRand(*o.seed)
	case base.Seed != 0:
		return newSeededRand(base.Seed)
	default:
		return newProcessRand()
	}
}

// degenerateRing is the last-resort output for primitives the sketcher
// absorbed entirely: a tiny dot at the first finite point, or an empty
// ring when even that does not exist.
func degenerateRing(p Primitive) []Point {
	if c, ok := p.anchor(); ok {
		Logger().Debug("degenerate primitive", "fallback", "dot")
		return dot(c, fallbackDotRadius)
	}
	Logger().Debug("degenerate primitive", "fallback", "empty")
	return []Point{}
}
