package goban

// --- Drawing Model ---

// Point is a physical position in mm, origin at the top-left of the
// canvas, y growing downward.
type Point struct {
	X float64
	Y float64
}

// LineKind tags a line segment as part of the interior grid or of the
// thicker outer rectangle.
type LineKind string

const (
	LineGrid   LineKind = "grid"
	LineBorder LineKind = "border"
)

// Line is a stroked segment with its width in mm.
type Line struct {
	From  Point
	To    Point
	Width float64
	Kind  LineKind
}

// Circle is a filled star point marker.
type Circle struct {
	Center   Point
	Diameter float64
}

// Text is an annotation label anchored at Pos (center anchor). Font
// face and size pass through untouched; measuring and shaping them is
// the renderer's job.
type Text struct {
	Pos      Point
	Content  string
	FontFace string
	FontSize float64
}

// Outline is the optional rounded cutting edge of the physical board,
// drawn at the canvas boundary.
type Outline struct {
	X, Y          float64
	Width, Height float64
	Radius        float64
	StrokeWidth   float64
}

// Drawing is the finished board layout: every primitive resolved to
// physical coordinates inside the Width x Height canvas. It is produced
// fresh by BuildLayout and never mutated afterwards; hand it to a
// renderer as-is.
type Drawing struct {
	Lines   []Line
	Circles []Circle
	Texts   []Text
	Outline *Outline
	Width   float64
	Height  float64
}

// annotationCenterFactor places labels inside the border strip, at this
// fraction of the border spacing from the canvas edge.
const annotationCenterFactor = 0.3

// --- Layout Assembly ---

// BuildLayout composes the full drawing for the board: all grid and
// border lines, star point circles, annotation labels and the optional
// outline, in one pure pass. The board was validated on construction,
// so the only way this returns an error is a future upstream component
// growing one; callers should still check it.
func (b *BoardSpec) BuildLayout() (*Drawing, error) {
	width, height := b.Dimensions()
	d := &Drawing{
		Width:  width,
		Height: height,
		Lines:  make([]Line, 0, b.size.Cols+b.size.Rows),
	}

	// Vertical lines, left to right. The outermost ones double as the
	// border and get the thicker stroke.
	for col := 0; col < b.size.Cols; col++ {
		kind, w := LineGrid, b.gridWidth
		if col == 0 || col == b.size.Cols-1 {
			kind, w = LineBorder, b.borderWidth
		}
		d.Lines = append(d.Lines, Line{
			From:  b.PointAt(col, 0),
			To:    b.PointAt(col, b.size.Rows-1),
			Width: w,
			Kind:  kind,
		})
	}

	// Horizontal lines, top to bottom.
	for row := 0; row < b.size.Rows; row++ {
		kind, w := LineGrid, b.gridWidth
		if row == 0 || row == b.size.Rows-1 {
			kind, w = LineBorder, b.borderWidth
		}
		d.Lines = append(d.Lines, Line{
			From:  b.PointAt(0, row),
			To:    b.PointAt(b.size.Cols-1, row),
			Width: w,
			Kind:  kind,
		})
	}

	for _, p := range b.starPointIndices() {
		d.Circles = append(d.Circles, Circle{
			Center:   b.PointAt(p.Col, p.Row),
			Diameter: b.starDiameter,
		})
	}

	// Column labels sit under their line in the bottom border strip.
	if b.xAnnotation != AnnotationNone {
		labelY := height - annotationCenterFactor*b.borderSpacing.Y
		for col := 0; col < b.size.Cols; col++ {
			d.Texts = append(d.Texts, Text{
				Pos:      Point{X: b.PointAt(col, 0).X, Y: labelY},
				Content:  annotationLabel(b.xAnnotation, col),
				FontFace: b.fontFace,
				FontSize: b.fontSize,
			})
		}
	}

	// Row labels sit left of their line and count from the bottom edge
	// upward, the way boards are read.
	if b.yAnnotation != AnnotationNone {
		labelX := annotationCenterFactor * b.borderSpacing.X
		for row := 0; row < b.size.Rows; row++ {
			d.Texts = append(d.Texts, Text{
				Pos:      Point{X: labelX, Y: b.PointAt(0, row).Y},
				Content:  annotationLabel(b.yAnnotation, b.size.Rows-1-row),
				FontFace: b.fontFace,
				FontSize: b.fontSize,
			})
		}
	}

	if b.outline {
		d.Outline = &Outline{
			X:           b.borderWidth / 2,
			Y:           b.borderWidth / 2,
			Width:       width - b.borderWidth,
			Height:      height - b.borderWidth,
			Radius:      b.lineSpacing.X / 3,
			StrokeWidth: b.borderWidth,
		}
	}

	return d, nil
}
