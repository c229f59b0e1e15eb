package freehand

import (
	"errors"
	"fmt"
)

// Primitive is the idealized input geometry for stroke synthesis: a shape
// before any hand-drawn perturbation. The set of implementations is sealed;
// Line, QuadBez, CubicBez and Polygon are the only variants.
type Primitive interface {
	isPrimitive()

	// anchor returns a representative finite point, used as the center of
	// the fallback dot when the shape itself is degenerate. ok is false
	// when no finite point exists.
	anchor() (p Point, ok bool)
}

func (Line) isPrimitive()     {}
func (QuadBez) isPrimitive()  {}
func (CubicBez) isPrimitive() {}
func (Polygon) isPrimitive()  {}

func (l Line) anchor() (Point, bool) {
	return firstFinite(l.P0, l.P1)
}

func (q QuadBez) anchor() (Point, bool) {
	return firstFinite(q.P0, q.P2, q.P1)
}

func (c CubicBez) anchor() (Point, bool) {
	return firstFinite(c.P0, c.P3, c.P1, c.P2)
}

func (pg Polygon) anchor() (Point, bool) {
	return firstFinite(pg.Points...)
}

func firstFinite(pts ...Point) (Point, bool) {
	for _, p := range pts {
		if p.IsFinite() {
			return p, true
		}
	}
	return Point{}, false
}

// Polygon is a closed outline through an ordered point list. The closing
// edge from the last point back to the first is implicit.
type Polygon struct {
	Points []Point
}

// ErrTooFewPoints is returned by NewPolygon for fewer than three points.
var ErrTooFewPoints = errors.New("freehand: polygon needs at least 3 points")

// NewPolygon validates and constructs a polygon primitive.
// This is the construction boundary of the error policy: malformed input
// (too few points, non-finite coordinates) is rejected here, while every
// later pipeline stage absorbs degeneracy silently.
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, ErrTooFewPoints
	}
	for i, p := range points {
		if !p.IsFinite() {
			return Polygon{}, fmt.Errorf("freehand: polygon point %d is not finite", i)
		}
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return Polygon{Points: pts}, nil
}

// Rectangle builds an axis-aligned rectangle polygon. Rectangles are the
// dominant shape in the typesetting domain (fraction bars, boxes, rules),
// so they get a dedicated constructor.
func Rectangle(x, y, w, h float64) Polygon {
	return Polygon{Points: []Point{
		Pt(x, y),
		Pt(x+w, y),
		Pt(x+w, y+h),
		Pt(x, y+h),
	}}
}

// Edges returns the polygon's edges, including the implicit closing edge.
func (pg Polygon) Edges() []Line {
	n := len(pg.Points)
	if n < 2 {
		return nil
	}
	edges := make([]Line, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Line{P0: pg.Points[i], P1: pg.Points[(i+1)%n]})
	}
	return edges
}

// Bounds returns the axis-aligned bounding box of a primitive's defining
// points. For curves this is the control-point hull box, which contains
// the curve.
func Bounds(p Primitive) Rect {
	switch s := p.(type) {
	case Line:
		return NewRect(s.P0, s.P1)
	case QuadBez:
		return NewRect(s.P0, s.P2).Union(NewRect(s.P1, s.P1))
	case CubicBez:
		return NewRect(s.P0, s.P3).Union(NewRect(s.P1, s.P2))
	case Polygon:
		if len(s.Points) == 0 {
			return Rect{}
		}
		r := NewRect(s.Points[0], s.Points[0])
		for _, pt := range s.Points[1:] {
			r = r.Union(NewRect(pt, pt))
		}
		return r
	}
	return Rect{}
}
