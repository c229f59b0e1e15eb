package freehand

import (
	"math"
	"math/rand"
)

// Style is the per-stroke parameter bundle. A Style is immutable once it
// reaches the pipeline: JitterStyle produces a fresh clamped copy and no
// stage mutates it afterwards.
//
// Every numeric field has a documented safe range (see the Min/Max
// constants). The outliner divides by values derived from Size and
// Thinning, so out-of-range values are silently clamped rather than
// rejected; a hostile or buggy style override degrades the look of one
// stroke, it never crashes a batch.
type Style struct {
	// Size is the base stroke half-width.
	// Clamped to [MinSize, MaxSize].
	Size float64

	// Thinning controls how much the local width follows pressure.
	// Positive values widen the stroke under pressure; negative values
	// invert the relationship (a ballpoint running out of ink).
	// Clamped to [MinThinning, MaxThinning].
	Thinning float64

	// Smoothing rounds corners by blending neighboring normals and radii
	// in the outliner. Clamped to [0, 1].
	Smoothing float64

	// Streamline controls how aggressively nearby samples are merged
	// before outlining. Higher values produce straighter, calmer
	// outlines. Clamped to [0, 1].
	Streamline float64

	// Roughness scales the wave and wobble offsets applied by the
	// sketcher and sampler. Zero disables perturbation entirely.
	// Clamped to [MinRoughness, MaxRoughness].
	Roughness float64

	// Bowing scales the perturbation of curve control points in the
	// sketcher. Clamped to [MinBowing, MaxBowing].
	Bowing float64

	// MultiStroke, when true, makes the sketcher emit two offset passes
	// per primitive instead of one, like a hand re-tracing a line.
	MultiStroke bool

	// Seed pins the random stream for reproducible output. Zero means
	// fresh randomness per call.
	Seed int64
}

// Documented clamp ranges. JitterStyle guarantees every field of its
// result lies inside these bounds no matter how extreme its inputs are.
const (
	MinSize = 0.8
	MaxSize = 6.0

	MinThinning = -1.0
	MaxThinning = 1.0

	MinSmoothing = 0.0
	MaxSmoothing = 1.0

	MinStreamline = 0.0
	MaxStreamline = 1.0

	// MinRoughness is 0, not the 0.5 default floor: a caller must be able
	// to switch perturbation off entirely for exact regression output.
	MinRoughness = 0.0
	MaxRoughness = 4.0

	MinBowing = 0.0
	MaxBowing = 6.0
)

// DefaultStyle returns a Style with moderate hand-drawn settings.
func DefaultStyle() Style {
	return Style{
		Size:       2.5,
		Thinning:   0.3,
		Smoothing:  0.5,
		Streamline: 0.4,
		Roughness:  1.2,
		Bowing:     1.0,
	}
}

// Clamped returns a copy of the style with every numeric field forced into
// its documented range. NaN fields collapse to the range minimum.
func (s Style) Clamped() Style {
	s.Size = clamp(s.Size, MinSize, MaxSize)
	s.Thinning = clamp(s.Thinning, MinThinning, MaxThinning)
	s.Smoothing = clamp(s.Smoothing, MinSmoothing, MaxSmoothing)
	s.Streamline = clamp(s.Streamline, MinStreamline, MaxStreamline)
	s.Roughness = clamp(s.Roughness, MinRoughness, MaxRoughness)
	s.Bowing = clamp(s.Bowing, MinBowing, MaxBowing)
	return s
}

// JitterStyle samples a per-invocation style from base and variance.
// Each numeric field is drawn as base + uniform(-1,1)*variance and clamped
// to its documented range, so repeated strokes differ slightly but never
// leave the safe operating window. MultiStroke and Seed are carried over
// from base unchanged.
//
// JitterStyle always consumes the same number of draws from rng, keeping
// the downstream random stream aligned for seeded reproducibility.
func JitterStyle(base, variance Style, rng *rand.Rand) Style {
	jittered := Style{
		Size:        jitter(base.Size, variance.Size, rng),
		Thinning:    jitter(base.Thinning, variance.Thinning, rng),
		Smoothing:   jitter(base.Smoothing, variance.Smoothing, rng),
		Streamline:  jitter(base.Streamline, variance.Streamline, rng),
		Roughness:   jitter(base.Roughness, variance.Roughness, rng),
		Bowing:      jitter(base.Bowing, variance.Bowing, rng),
		MultiStroke: base.MultiStroke,
		Seed:        base.Seed,
	}
	return jittered.Clamped()
}

// jitter draws base + uniform(-1,1)*variance. A non-finite variance is
// treated as zero so malformed overrides cannot poison the result.
func jitter(base, variance float64, rng *rand.Rand) float64 {
	u := rng.Float64()*2 - 1
	if !isFinite(variance) {
		variance = 0
	}
	return base + u*variance
}

// StyleOverride is a partial style: nil fields mean "inherit". It is the
// layered-configuration companion to Style, replacing ad hoc merging at
// call sites.
type StyleOverride struct {
	Size        *float64
	Thinning    *float64
	Smoothing   *float64
	Streamline  *float64
	Roughness   *float64
	Bowing      *float64
	MultiStroke *bool
	Seed        *int64
}

// Apply returns s with every non-nil override field replaced.
func (o StyleOverride) Apply(s Style) Style {
	if o.Size != nil {
		s.Size = *o.Size
	}
	if o.Thinning != nil {
		s.Thinning = *o.Thinning
	}
	if o.Smoothing != nil {
		s.Smoothing = *o.Smoothing
	}
	if o.Streamline != nil {
		s.Streamline = *o.Streamline
	}
	if o.Roughness != nil {
		s.Roughness = *o.Roughness
	}
	if o.Bowing != nil {
		s.Bowing = *o.Bowing
	}
	if o.MultiStroke != nil {
		s.MultiStroke = *o.MultiStroke
	}
	if o.Seed != nil {
		s.Seed = *o.Seed
	}
	return s
}

// ResolveStyle merges a global style with progressively more specific
// override layers. Later layers win over earlier ones; the result is
// clamped. This states the precedence rule (per-call > category > global)
// in one place instead of re-deriving it at each call site.
func ResolveStyle(global Style, layers ...StyleOverride) Style {
	s := global
	for _, layer := range layers {
		s = layer.Apply(s)
	}
	return s.Clamped()
}

// clamp forces v into [lo, hi]. NaN collapses to lo: the comparison
// ordering below makes NaN fail both branches' complements, so handle it
// explicitly.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
