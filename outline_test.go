package freehand

import (
	"math"
	"testing"
)

// flatRun builds a horizontal run of samples with the given pressures,
// spaced evenly over [0, 100].
func flatRun(pressures []float64) []StrokePoint {
	run := make([]StrokePoint, len(pressures))
	for i, p := range pressures {
		x := 100 * float64(i) / float64(len(pressures)-1)
		run[i] = StrokePoint{Pos: Pt(x, 0), Pressure: p}
	}
	return run
}

func TestOutline_ClosedRing(t *testing.T) {
	run := flatRun([]float64{0.3, 0.5, 0.7, 0.5, 0.3})
	style := Style{Size: 3, Thinning: 0.25}

	ring := Outline(run, style)
	if len(ring) < 3 {
		t.Fatalf("ring has %d vertices, want at least 3", len(ring))
	}
	if area := PolygonArea(ring); area <= 0 {
		t.Errorf("ring area = %v, want > 0", area)
	}
	for i, p := range ring {
		if !p.IsFinite() {
			t.Errorf("vertex %d = %v is not finite", i, p)
		}
	}
}

func TestOutline_PressureWidthCorrelation(t *testing.T) {
	pressures := []float64{0.1, 0.3, 0.6, 1.0, 0.6, 0.3, 0.1}
	run := flatRun(pressures)
	style := Style{Size: 3, Thinning: 0.5} // no smoothing/streamline: direct mapping

	ring := Outline(run, style)
	n := len(pressures)
	if len(ring) != 2*n {
		t.Fatalf("ring has %d vertices, want %d (two rails)", len(ring), 2*n)
	}

	// Vertex i and its mirror across the rails bracket sample i; their
	// distance is the local width.
	widest, widestWidth := -1, -1.0
	var prevWidth float64
	for i := 0; i < n; i++ {
		w := ring[i].Distance(ring[2*n-1-i])
		if w > widestWidth {
			widest, widestWidth = i, w
		}
		if i > 0 && i <= n/2 && w < prevWidth-1e-9 {
			t.Errorf("width not monotone on rising-pressure half: sample %d width %v < %v", i, w, prevWidth)
		}
		prevWidth = w
	}
	if widest != 3 {
		t.Errorf("widest point at sample %d, want 3 (max pressure)", widest)
	}
	wantMax := 2 * strokeRadius(style, 1.0)
	if math.Abs(widestWidth-wantMax) > 1e-9 {
		t.Errorf("max width = %v, want %v", widestWidth, wantMax)
	}
}

func TestOutline_NegativeThinningInverts(t *testing.T) {
	run := flatRun([]float64{0.2, 0.8})
	style := Style{Size: 3, Thinning: -0.5}

	ring := Outline(run, style)
	lowPressureWidth := ring[0].Distance(ring[len(ring)-1])
	highPressureWidth := ring[1].Distance(ring[len(ring)-2])
	if lowPressureWidth <= highPressureWidth {
		t.Errorf("negative thinning: low-pressure width %v should exceed high-pressure width %v", lowPressureWidth, highPressureWidth)
	}
}

func TestOutline_MinimalInput(t *testing.T) {
	style := DefaultStyle()

	tests := []struct {
		name string
		run  []StrokePoint
	}{
		{"empty", nil},
		{"single point", []StrokePoint{{Pos: Pt(5, 5), Pressure: 0.5}}},
		{"two points", []StrokePoint{{Pos: Pt(0, 0), Pressure: 0.5}, {Pos: Pt(1, 0), Pressure: 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ring := Outline(tt.run, style)
			if ring == nil {
				t.Fatal("ring is nil, want non-nil (possibly empty)")
			}
			if len(tt.run) == 0 {
				if len(ring) != 0 {
					t.Errorf("empty input: ring has %d vertices, want 0", len(ring))
				}
				return
			}
			if len(ring) < 3 {
				t.Fatalf("ring has %d vertices, want a minimal filled shape", len(ring))
			}
			if area := PolygonArea(ring); area <= 0 {
				t.Errorf("ring area = %v, want > 0 for a dot", area)
			}
		})
	}
}

func TestOutline_AbsorbsNonFiniteSamples(t *testing.T) {
	run := []StrokePoint{
		{Pos: Pt(0, 0), Pressure: 0.5},
		{Pos: Pt(math.NaN(), 10), Pressure: 0.5},
		{Pos: Pt(50, 0), Pressure: 0.5},
		{Pos: Pt(math.Inf(1), 0), Pressure: 0.5},
		{Pos: Pt(100, 0), Pressure: 0.5},
	}
	ring := Outline(run, Style{Size: 2})
	if len(ring) < 3 {
		t.Fatalf("ring has %d vertices, want the finite samples outlined", len(ring))
	}
	for i, p := range ring {
		if !p.IsFinite() {
			t.Errorf("vertex %d = %v leaked non-finite input", i, p)
		}
	}
}

func TestOutline_StreamlineMergesSamples(t *testing.T) {
	// Densely spaced samples: high streamline should merge many of them.
	run := make([]StrokePoint, 101)
	for i := range run {
		run[i] = StrokePoint{Pos: Pt(float64(i), 0), Pressure: 0.5}
	}

	loose := Outline(run, Style{Size: 2, Streamline: 0})
	tight := Outline(run, Style{Size: 2, Streamline: 1})
	if len(tight) >= len(loose) {
		t.Errorf("streamline 1 ring has %d vertices, want fewer than %d", len(tight), len(loose))
	}

	// Endpoints keep their exact positions.
	bounds := PolygonBounds(tight)
	if math.Abs(bounds.Width()-100) > 2*strokeRadius(Style{Size: 2}, 1) {
		t.Errorf("streamlined stroke width %v, want about 100", bounds.Width())
	}
}

func TestStrokeRadius(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		pressure float64
		want     float64
	}{
		{"no thinning", Style{Size: 3}, 0.9, 3},
		{"max pressure positive thinning", Style{Size: 3, Thinning: 0.5}, 1.0, 4.5},
		{"min pressure positive thinning", Style{Size: 3, Thinning: 0.5}, 0.0, 1.5},
		{"mid pressure", Style{Size: 3, Thinning: 0.5}, 0.5, 3},
		{"collapse clamps to floor", Style{Size: 1, Thinning: 1}, 0.0, minStrokeRadius},
		{"nan pressure", Style{Size: 3}, math.NaN(), minStrokeRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strokeRadius(tt.style, tt.pressure)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("strokeRadius = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		ring []Point
		want float64
	}{
		{"empty", nil, 0},
		{"degenerate pair", []Point{Pt(0, 0), Pt(1, 1)}, 0},
		{"unit square", []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}, 1},
		{"reversed square", []Point{Pt(0, 1), Pt(1, 1), Pt(1, 0), Pt(0, 0)}, 1},
		{"triangle", []Point{Pt(0, 0), Pt(4, 0), Pt(0, 3)}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonArea(tt.ring); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("PolygonArea = %v, want %v", got, tt.want)
			}
		})
	}
}
