package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"

	"github.com/gogpu/freehand"
)

// scene is the top-level TOML document.
//
// Example:
//
//	width = 400
//	height = 200
//	seed = 42
//	background = "#ffffff"
//
//	[style]
//	size = 3.0
//	roughness = 1.2
//
//	[[shape]]
//	kind = "line"
//	points = [[20.0, 100.0], [380.0, 100.0]]
//	color = "#1a1a2e"
type scene struct {
	Width      int
	Height     int
	Seed       int64
	Scale      float64
	Background string
	Style      styleConfig
	Shape      []shapeConfig
}

// styleConfig mirrors freehand.StyleOverride: absent keys inherit.
type styleConfig struct {
	Size        *float64
	Thinning    *float64
	Smoothing   *float64
	Streamline  *float64
	Roughness   *float64
	Bowing      *float64
	MultiStroke *bool `toml:"multistroke"`
}

func (c styleConfig) override() freehand.StyleOverride {
	return freehand.StyleOverride{
		Size:        c.Size,
		Thinning:    c.Thinning,
		Smoothing:   c.Smoothing,
		Streamline:  c.Streamline,
		Roughness:   c.Roughness,
		Bowing:      c.Bowing,
		MultiStroke: c.MultiStroke,
	}
}

type shapeConfig struct {
	Kind   string
	Points [][]float64
	Rect   []float64
	Color  string
	Style  styleConfig
}

func loadScene(path string) (*scene, error) {
	var s scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("scene %s: width and height must be positive", path)
	}
	if s.Scale == 0 {
		s.Scale = 1
	}
	return &s, nil
}

// primitive converts a shape entry into a freehand primitive, applying the
// scene scale transform.
func (sh shapeConfig) primitive(m freehand.Matrix) (freehand.Primitive, error) {
	pts := make([]freehand.Point, 0, len(sh.Points))
	for i, xy := range sh.Points {
		if len(xy) != 2 {
			return nil, fmt.Errorf("shape %q: point %d must be [x, y]", sh.Kind, i)
		}
		pts = append(pts, m.TransformPoint(freehand.Pt(xy[0], xy[1])))
	}

	switch sh.Kind {
	case "line":
		if len(pts) != 2 {
			return nil, fmt.Errorf("line needs 2 points, got %d", len(pts))
		}
		return freehand.NewLine(pts[0], pts[1]), nil
	case "quad":
		if len(pts) != 3 {
			return nil, fmt.Errorf("quad needs 3 points, got %d", len(pts))
		}
		return freehand.NewQuadBez(pts[0], pts[1], pts[2]), nil
	case "cubic":
		if len(pts) != 4 {
			return nil, fmt.Errorf("cubic needs 4 points, got %d", len(pts))
		}
		return freehand.NewCubicBez(pts[0], pts[1], pts[2], pts[3]), nil
	case "polygon":
		return freehand.NewPolygon(pts)
	case "rect":
		if len(sh.Rect) != 4 {
			return nil, fmt.Errorf("rect needs [x, y, w, h], got %d values", len(sh.Rect))
		}
		r := freehand.Rectangle(sh.Rect[0], sh.Rect[1], sh.Rect[2], sh.Rect[3])
		scaled := make([]freehand.Point, len(r.Points))
		for i, p := range r.Points {
			scaled[i] = m.TransformPoint(p)
		}
		return freehand.Polygon{Points: scaled}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
}

func renderScene(s *scene, logger *charmlog.Logger) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	if s.Background != "" {
		bg, err := parseHexColor(s.Background)
		if err != nil {
			return nil, err
		}
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	transform := freehand.Scale(s.Scale, s.Scale)
	base := freehand.ResolveStyle(freehand.DefaultStyle(), s.Style.override())

	for i, sh := range s.Shape {
		p, err := sh.primitive(transform)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		style := freehand.ResolveStyle(base, sh.Style.override())

		c := color.Color(color.Black)
		if sh.Color != "" {
			if c, err = parseHexColor(sh.Color); err != nil {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
		}

		var opts []freehand.Option
		if s.Seed != 0 {
			// Deterministic scenes stay deterministic per shape while
			// shapes still differ from each other.
			opts = append(opts, freehand.WithSeed(s.Seed+int64(i)*1000))
		}
		rings := freehand.SynthesizeStrokes(p, style, freehand.Style{}, opts...)
		logger.Debug("shape synthesized", "index", i, "kind", sh.Kind, "rings", len(rings))
		freehand.RasterizeOver(img, rings, c)
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	return freehand.SavePNG(path, img)
}

// parseHexColor parses #rgb, #rrggbb, and #rrggbbaa.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q: must start with #", s)
	}
	hex := s[1:]

	digit := func(b byte) (uint8, error) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', nil
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, nil
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, nil
		}
		return 0, fmt.Errorf("invalid color %q: bad hex digit %q", s, b)
	}
	pair := func(i int) (uint8, error) {
		hi, err := digit(hex[i])
		if err != nil {
			return 0, err
		}
		lo, err := digit(hex[i+1])
		if err != nil {
			return 0, err
		}
		return hi<<4 | lo, nil
	}

	c := color.RGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 3:
		var d uint8
		if d, err = digit(hex[0]); err == nil {
			c.R = d * 0x11
			if d, err = digit(hex[1]); err == nil {
				c.G = d * 0x11
				if d, err = digit(hex[2]); err == nil {
					c.B = d * 0x11
				}
			}
		}
	case 8:
		if c.A, err = pair(6); err != nil {
			return color.RGBA{}, err
		}
		fallthrough
	case 6:
		if c.R, err = pair(0); err == nil {
			if c.G, err = pair(2); err == nil {
				c.B, err = pair(4)
			}
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	if err != nil {
		return color.RGBA{}, err
	}
	return c, nil
}
