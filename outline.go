package freehand

import "math"

// Stroke outlining: turn a run of pressure-tagged samples into a closed,
// fillable ring whose width varies with pressure. The construction walks
// the samples once, emits an offset point on each side of the path at the
// local half-width, and concatenates the left rail forward with the right
// rail backward into one ring.
//
// The outliner applies width locally; it does not attempt topological
// cleanup of self-intersecting input. Overlap is fine because rings are
// filled with a solid fill rule.

// minStrokeRadius is the floor for the local half-width. It keeps extreme
// thinning from collapsing the ring to zero area.
const minStrokeRadius = 0.25

// dotSides is the vertex count of the fallback dot polygon.
const dotSides = 8

// strokeRadius computes the local half-width for a sample.
//
// The relationship is multiplicative: radius = size * (1 + thinning *
// (pressure-0.5) * 2), clamped to at least minStrokeRadius. Thinning 0
// gives a constant radius of size; positive thinning widens the stroke
// under pressure; negative thinning inverts the response.
func strokeRadius(style Style, pressure float64) float64 {
	if !isFinite(pressure) {
		return minStrokeRadius
	}
	pressure = clamp(pressure, 0, 1)
	r := style.Size * (1 + style.Thinning*(pressure-0.5)*2)
	if !(r > minStrokeRadius) {
		return minStrokeRadius
	}
	return r
}

// Outline builds the closed variable-width ring for one sample run.
//
// Streamline merges near-duplicate interior samples and pulls them toward
// their predecessor, straightening the path; smoothing blends neighboring
// normals and radii, rounding corners. A run of zero samples yields an
// empty ring; one or two effective samples yield a small dot or capsule
// so a period glyph still renders as something.
func Outline(points []StrokePoint, style Style) []Point {
	pts := streamline(points, style.Streamline)
	if len(pts) == 0 {
		Logger().Debug("empty outline", "reason", "no finite samples")
		return []Point{}
	}
	if len(pts) == 1 {
		return dot(pts[0].Pos, strokeRadius(style, pts[0].Pressure))
	}

	normals := railNormals(pts)
	radii := make([]float64, len(pts))
	for i, p := range pts {
		radii[i] = strokeRadius(style, p.Pressure)
	}
	smoothRails(normals, radii, style.Smoothing)

	// Left rail forward, right rail backward, one closed ring.
	ring := make([]Point, 0, 2*len(pts))
	for i, p := range pts {
		off := normals[i].Mul(radii[i])
		ring = append(ring, Point{X: p.Pos.X + off.X, Y: p.Pos.Y + off.Y})
	}
	for i := len(pts) - 1; i >= 0; i-- {
		off := normals[i].Mul(radii[i])
		ring = append(ring, Point{X: pts[i].Pos.X - off.X, Y: pts[i].Pos.Y - off.Y})
	}
	return ring
}

// streamline drops non-finite samples, merges interior samples that sit
// closer than a gap that grows with the streamline setting, and pulls
// interior samples toward their predecessor. Endpoints keep their exact
// positions so the stroke still spans its primitive.
func streamline(points []StrokePoint, amount float64) []StrokePoint {
	kept := make([]StrokePoint, 0, len(points))
	for _, p := range points {
		if p.Pos.IsFinite() {
			kept = append(kept, p)
		}
	}
	if len(kept) <= 2 || amount <= 0 {
		return kept
	}

	minGap := 0.5 + amount*2.0
	pull := amount * 0.5
	out := make([]StrokePoint, 0, len(kept))
	out = append(out, kept[0])
	for i := 1; i < len(kept)-1; i++ {
		prev := out[len(out)-1]
		pos := prev.Pos.Lerp(kept[i].Pos, 1-pull)
		if pos.Distance(prev.Pos) < minGap {
			continue
		}
		out = append(out, StrokePoint{Pos: pos, Pressure: kept[i].Pressure})
	}
	return append(out, kept[len(kept)-1])
}

// railNormals computes a unit normal per sample from central-difference
// tangents (one-sided at the ends). Coincident neighbors reuse the
// previous normal rather than emitting a zero vector.
func railNormals(pts []StrokePoint) []Vec2 {
	normals := make([]Vec2, len(pts))
	prev := V2(0, 1)
	for i := range pts {
		var tangent Vec2
		switch {
		case i == 0:
			tangent = PointToVec2(pts[1].Pos.Sub(pts[0].Pos))
		case i == len(pts)-1:
			tangent = PointToVec2(pts[i].Pos.Sub(pts[i-1].Pos))
		default:
			tangent = PointToVec2(pts[i+1].Pos.Sub(pts[i-1].Pos))
		}
		n := tangent.Perp().Normalize()
		if n.IsZero() {
			n = prev
		}
		normals[i] = n
		prev = n
	}
	return normals
}

// smoothRails blends each interior normal and radius toward the average of
// its neighbors, proportionally to the smoothing setting. This is what
// rounds corners where consecutive tangents disagree.
func smoothRails(normals []Vec2, radii []float64, smoothing float64) {
	if smoothing <= 0 || len(normals) < 3 {
		return
	}
	prevN := normals[0]
	prevR := radii[0]
	for i := 1; i < len(normals)-1; i++ {
		avgN := prevN.Add(normals[i+1]).Mul(0.5)
		avgR := (prevR + radii[i+1]) / 2
		prevN = normals[i]
		prevR = radii[i]
		blended := normals[i].Lerp(avgN, smoothing).Normalize()
		if !blended.IsZero() {
			normals[i] = blended
		}
		radii[i] = radii[i] + (avgR-radii[i])*smoothing
	}
}

// dot builds a small regular polygon around a point, the minimal valid
// output for single-sample input.
func dot(center Point, radius float64) []Point {
	ring := make([]Point, 0, dotSides)
	for i := 0; i < dotSides; i++ {
		a := 2 * math.Pi * float64(i) / dotSides
		ring = append(ring, Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return ring
}

// PolygonArea returns the unsigned area of a closed ring via the shoelace
// formula. Degenerate rings (fewer than 3 vertices) have zero area.
func PolygonArea(ring []Point) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		sum += p.Cross(q)
	}
	return math.Abs(sum) / 2
}

// PolygonBounds returns the axis-aligned bounding box of a ring.
// An empty ring yields the zero Rect.
func PolygonBounds(ring []Point) Rect {
	if len(ring) == 0 {
		return Rect{}
	}
	r := NewRect(ring[0], ring[0])
	for _, p := range ring[1:] {
		r = r.Union(NewRect(p, p))
	}
	return r
}
