package freehand

import "testing"

func TestPathOperations(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}

	p.MoveTo(10, 20)
	p.LineTo(30, 40)
	p.QuadraticTo(50, 60, 70, 80)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.Close()

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want 5", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("element 0 is %T, want MoveTo", elems[0])
	}
	if _, ok := elems[1].(LineTo); !ok {
		t.Errorf("element 1 is %T, want LineTo", elems[1])
	}
	if _, ok := elems[2].(QuadTo); !ok {
		t.Errorf("element 2 is %T, want QuadTo", elems[2])
	}
	if _, ok := elems[3].(CubicTo); !ok {
		t.Errorf("element 3 is %T, want CubicTo", elems[3])
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("element 4 is %T, want Close", elems[4])
	}

	// Close returns to the subpath start.
	if got := p.CurrentPoint(); got != Pt(10, 20) {
		t.Errorf("current point after Close = %v, want (10,20)", got)
	}

	p.Clear()
	if !p.IsEmpty() {
		t.Error("path should be empty after Clear")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 20, 0)

	moved := p.Transform(Translate(5, 7))
	elems := moved.Elements()
	if got := elems[0].(MoveTo).Point; got != Pt(5, 7) {
		t.Errorf("MoveTo = %v, want (5,7)", got)
	}
	if got := elems[1].(LineTo).Point; got != Pt(15, 7) {
		t.Errorf("LineTo = %v, want (15,7)", got)
	}
	q := elems[2].(QuadTo)
	if q.Control != Pt(20, 12) || q.Point != Pt(25, 7) {
		t.Errorf("QuadTo = %+v, want control (20,12) point (25,7)", q)
	}

	// Original untouched.
	if got := p.Elements()[0].(MoveTo).Point; got != Pt(0, 0) {
		t.Errorf("original mutated: MoveTo = %v", got)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	c := p.Clone()
	c.LineTo(5, 6)
	if len(p.Elements()) != 2 {
		t.Errorf("clone append leaked into original: %d elements", len(p.Elements()))
	}
	if len(c.Elements()) != 3 {
		t.Errorf("clone has %d elements, want 3", len(c.Elements()))
	}
	if c.CurrentPoint() != Pt(5, 6) {
		t.Errorf("clone current point = %v, want (5,6)", c.CurrentPoint())
	}
}

func TestPathBuilder(t *testing.T) {
	p := BuildPath().
		MoveTo(0, 0).
		LineTo(10, 0).
		QuadTo(15, 5, 20, 0).
		CubicTo(22, 2, 24, -2, 26, 0).
		Close().
		Build()

	if len(p.Elements()) != 5 {
		t.Fatalf("got %d elements, want 5", len(p.Elements()))
	}
}

func TestPathBuilderRect(t *testing.T) {
	p := BuildPath().Rect(2, 3, 10, 5).Build()

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want MoveTo + 3 LineTo + Close", len(elems))
	}
	if got := elems[0].(MoveTo).Point; got != Pt(2, 3) {
		t.Errorf("rect origin = %v, want (2,3)", got)
	}
	if got := elems[2].(LineTo).Point; got != Pt(12, 8) {
		t.Errorf("rect far corner = %v, want (12,8)", got)
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("last element is %T, want Close", elems[4])
	}
}
