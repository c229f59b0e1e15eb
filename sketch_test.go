package freehand

import (
	"math"
	"testing"
)

// countMoves returns the number of sub-paths in a sketch.
func countMoves(p *Path) int {
	n := 0
	for _, e := range p.Elements() {
		if _, ok := e.(MoveTo); ok {
			n++
		}
	}
	return n
}

func TestSketch_PassCounts(t *testing.T) {
	line := NewLine(Pt(0, 0), Pt(100, 0))
	curve := NewCubicBez(Pt(0, 0), Pt(30, -20), Pt(70, 20), Pt(100, 0))
	box := Rectangle(0, 0, 50, 30)

	tests := []struct {
		name      string
		primitive Primitive
		multi     bool
		want      int
	}{
		{"line single", line, false, 1},
		{"line multi", line, true, 2},
		{"cubic single", curve, false, 1},
		{"cubic multi", curve, true, 2},
		{"rect single", box, false, 4},
		{"rect multi", box, true, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := DefaultStyle()
			style.MultiStroke = tt.multi
			sketch := Sketch(tt.primitive, style, newSeededRand(1))
			if got := countMoves(sketch); got != tt.want {
				t.Errorf("sub-paths = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSketch_Deterministic(t *testing.T) {
	style := DefaultStyle()
	style.MultiStroke = true
	curve := NewQuadBez(Pt(0, 0), Pt(50, 40), Pt(100, 0))

	a := Sketch(curve, style, newSeededRand(99))
	b := Sketch(curve, style, newSeededRand(99))

	ae, be := a.Elements(), b.Elements()
	if len(ae) != len(be) {
		t.Fatalf("element counts differ: %d vs %d", len(ae), len(be))
	}
	for i := range ae {
		if ae[i] != be[i] {
			t.Errorf("element %d differs: %v vs %v", i, ae[i], be[i])
		}
	}
}

func TestSketch_Degenerate(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name      string
		primitive Primitive
	}{
		{"zero-length line", NewLine(Pt(5, 5), Pt(5, 5))},
		{"nan line", NewLine(Pt(nan, 0), Pt(10, 0))},
		{"inf line", NewLine(Pt(math.Inf(1), 0), Pt(10, 0))},
		{"collapsed cubic", NewCubicBez(Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1))},
		{"collapsed polygon", Polygon{Points: []Point{Pt(2, 2), Pt(2, 2), Pt(2, 2)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sketch := Sketch(tt.primitive, DefaultStyle(), newSeededRand(1))
			if !sketch.IsEmpty() {
				t.Errorf("degenerate primitive produced %d elements, want empty path", len(sketch.Elements()))
			}
			for _, e := range sketch.Elements() {
				if lt, ok := e.(LineTo); ok && !lt.Point.IsFinite() {
					t.Errorf("sketch contains non-finite point %v", lt.Point)
				}
			}
		})
	}
}

func TestSketch_ZeroRoughnessIsExact(t *testing.T) {
	line := NewLine(Pt(0, 0), Pt(100, 0))
	style := DefaultStyle()
	style.Roughness = 0

	sketch := Sketch(line, style, newSeededRand(1))
	elems := sketch.Elements()
	if len(elems) != 2 {
		t.Fatalf("got %d elements, want MoveTo+LineTo", len(elems))
	}
	if mv := elems[0].(MoveTo); !mv.Point.Approx(Pt(0, 0), 1e-12) {
		t.Errorf("MoveTo = %v, want exact (0,0)", mv.Point)
	}
	if ln := elems[1].(LineTo); !ln.Point.Approx(Pt(100, 0), 1e-12) {
		t.Errorf("LineTo = %v, want exact (100,0)", ln.Point)
	}
}

func TestSketch_PolygonCornersIndependent(t *testing.T) {
	style := DefaultStyle()
	style.Roughness = 2

	sketch := Sketch(Rectangle(0, 0, 40, 40), style, newSeededRand(3))

	// Each edge is a separate pass; consecutive edges should not share an
	// endpoint exactly (that alignment is what the sketcher avoids).
	var ends, starts []Point
	for _, e := range sketch.Elements() {
		switch el := e.(type) {
		case MoveTo:
			starts = append(starts, el.Point)
		case LineTo:
			ends = append(ends, el.Point)
		}
	}
	if len(starts) != 4 || len(ends) != 4 {
		t.Fatalf("got %d starts, %d ends, want 4 each", len(starts), len(ends))
	}
	aligned := 0
	for i := range ends {
		if ends[i].Approx(starts[(i+1)%4], 1e-9) {
			aligned++
		}
	}
	if aligned == 4 {
		t.Error("all corners align exactly; edges are not independently perturbed")
	}
}
