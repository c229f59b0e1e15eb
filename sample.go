package freehand

import (
	"math"
	"math/rand"
)

// Point sampling: convert sketch sub-paths into pressure-tagged sample
// points. The sampler owns the high-frequency look of a stroke: the
// sinusoidal wave and random wobble along the path normal, and the
// synthetic pen-pressure profile that later drives local width.

// StrokePoint is one pressure-tagged sample along a stroke.
// Pressure is synthetic, in [0,1], derived from position along the path.
type StrokePoint struct {
	Pos      Point
	Pressure float64
}

// Sampling parameters. Line sampling is length-adaptive with a floor so
// very short segments still get enough points to look smooth; curves use a
// fixed count because they are short relative to lines in this domain.
const (
	minLineSteps    = 4
	lineStepDivisor = 8.0
	curveSteps      = 16

	// waveScale and wobbleScale convert Roughness into offset amplitudes
	// relative to segment length.
	waveScale   = 0.005
	wobbleScale = 0.003

	// Pressure profile bounds: pressureBase at the light end,
	// pressureBase+pressureVar at the heavy end.
	pressureBase = 0.3
	pressureVar  = 0.4
)

// pressureProfile selects which end of a stroke carries the most weight.
type pressureProfile int

const (
	// pressureMid is the natural pen profile: heavier mid-stroke, lighter
	// at both ends.
	pressureMid pressureProfile = iota
	// pressureFront starts heavy and tapers off.
	pressureFront
	// pressureBack starts light and finishes heavy.
	pressureBack
)

// pressureAt evaluates the profile at parametric position t in [0,1].
func pressureAt(profile pressureProfile, t float64) float64 {
	switch profile {
	case pressureFront:
		return pressureBase + pressureVar*math.Cos(t*math.Pi/2)
	case pressureBack:
		return pressureBase + pressureVar*math.Sin(t*math.Pi/2)
	default:
		return pressureBase + pressureVar*math.Sin(t*math.Pi)
	}
}

// pickProfile chooses a pressure profile for one stroke pass. The
// mid-weighted profile dominates; the asymmetric ones appear occasionally
// for variety.
func pickProfile(rng *rand.Rand) pressureProfile {
	switch rng.Intn(4) {
	case 0:
		return pressureFront
	case 1:
		return pressureBack
	default:
		return pressureMid
	}
}

// SamplePath converts each sub-path of a sketch into a run of pressure
// tagged samples. Each run gets its own pressure profile and wave
// frequency; every non-degenerate segment contributes at least two
// samples. Degenerate ops (non-finite or zero-length) are skipped.
func SamplePath(path *Path, style Style, rng *rand.Rand) [][]StrokePoint {
	var runs [][]StrokePoint
	var run []StrokePoint
	var current, start Point
	profile := pressureMid
	freq := 1.0

	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, run)
		}
		run = nil
	}

	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			// Per-pass character: each hand stroke has its own pressure
			// shape and wave frequency.
			profile = pickProfile(rng)
			freq = 1.0 + rng.Float64()
			current = e.Point
			start = e.Point

		case LineTo:
			run = sampleLine(run, Line{P0: current, P1: e.Point}, style, rng, profile, freq)
			current = e.Point

		case QuadTo:
			c := QuadBez{P0: current, P1: e.Control, P2: e.Point}.Raise()
			run = sampleCubic(run, c, style, rng, profile, freq)
			current = e.Point

		case CubicTo:
			c := CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			run = sampleCubic(run, c, style, rng, profile, freq)
			current = e.Point

		case Close:
			run = sampleLine(run, Line{P0: current, P1: start}, style, rng, profile, freq)
			current = start
		}
	}
	flush()

	if len(runs) > 0 {
		Logger().Debug("sampled sketch", "runs", len(runs), "samples", totalSamples(runs))
	}
	return runs
}

// lineSteps returns the sample step count for a segment of the given
// length: bounded below by minLineSteps, scaling with length above that.
func lineSteps(length float64) int {
	steps := int(math.Ceil(length / lineStepDivisor))
	if steps < minLineSteps {
		return minLineSteps
	}
	return steps
}

// sampleLine appends samples for a straight segment to run.
func sampleLine(run []StrokePoint, l Line, style Style, rng *rand.Rand, profile pressureProfile, freq float64) []StrokePoint {
	if !l.P0.IsFinite() || !l.P1.IsFinite() {
		Logger().Debug("degenerate segment absorbed", "stage", "sample", "reason", "non-finite")
		return run
	}
	length := l.Length()
	if length < degenerateEps {
		return run
	}

	normal := PointToVec2(l.P1.Sub(l.P0)).Perp().Normalize()
	steps := lineSteps(length)
	for i := firstStep(run); i <= steps; i++ {
		t := float64(i) / float64(steps)
		pos := offsetAlongNormal(l.Eval(t), normal, t, length, style, rng, freq)
		run = append(run, StrokePoint{Pos: pos, Pressure: pressureAt(profile, t)})
	}
	return run
}

// sampleCubic appends samples for a cubic segment to run. Curves use a
// fixed step count and the exact curve normal at each t.
func sampleCubic(run []StrokePoint, c CubicBez, style Style, rng *rand.Rand, profile pressureProfile, freq float64) []StrokePoint {
	if !c.P0.IsFinite() || !c.P1.IsFinite() || !c.P2.IsFinite() || !c.P3.IsFinite() {
		Logger().Debug("degenerate segment absorbed", "stage", "sample", "reason", "non-finite")
		return run
	}
	extent := c.ControlPolygonLength()
	if extent < degenerateEps {
		return run
	}

	for i := firstStep(run); i <= curveSteps; i++ {
		t := float64(i) / float64(curveSteps)
		normal := c.Normal(t)
		pos := offsetAlongNormal(c.Eval(t), normal, t, extent, style, rng, freq)
		run = append(run, StrokePoint{Pos: pos, Pressure: pressureAt(profile, t)})
	}
	return run
}

// firstStep returns 0 for the first segment of a run and 1 for follow-on
// segments, so shared segment endpoints are not sampled twice.
func firstStep(run []StrokePoint) int {
	if len(run) == 0 {
		return 0
	}
	return 1
}

// offsetAlongNormal applies the shaky-hand displacement: a sine wave plus
// uniform wobble, both scaled by segment length and Roughness, applied
// along the path normal rather than the tangent. Offsets along the normal
// are what read as visible waviness; tangential jitter just changes
// spacing.
func offsetAlongNormal(base Point, normal Vec2, t, length float64, style Style, rng *rand.Rand, freq float64) Point {
	wave := math.Sin(t*math.Pi*freq) * length * waveScale * style.Roughness
	wobble := (rng.Float64()*2 - 1) * length * wobbleScale * style.Roughness
	off := normal.Mul(wave + wobble)
	return Point{X: base.X + off.X, Y: base.Y + off.Y}
}

func totalSamples(runs [][]StrokePoint) int {
	n := 0
	for _, r := range runs {
		n += len(r)
	}
	return n
}
