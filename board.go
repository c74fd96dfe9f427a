// Package goban turns an abstract Go board description into a fully
// resolved set of 2D drawing primitives (line segments, filled circles,
// positioned text) in millimeter units, ready for a vector rendering
// backend. The package also ships the thin rendering shells the CLI
// uses: SVG serialization, an HTML preview, and PNG/JPG export through
// a headless browser.
package goban

import "fmt"

// Built-in defaults, matching a 9x9 board with 22x23.7 mm stone slots.
const (
	defaultStarPointDiameter = 4.0
	defaultFontFace          = "Microsoft YaHei"
	defaultFontSize          = 8.0
)

var (
	defaultSize          = Square(9)
	defaultLineWidths    = Asym(1.0, 2.0)
	defaultLineSpacing   = Asym(22.0, 23.7)
	defaultBorderSpacing = Asym(11.0, 12.0)
)

// BoardSpec is a validated, immutable board configuration. Build one
// with NewBoardSpec; a BoardSpec that exists is always internally
// consistent, so the layout methods on it cannot fail on bad
// parameters.
type BoardSpec struct {
	size          SizeSpec
	gridWidth     float64 // thinner interior lines, mm
	borderWidth   float64 // outermost lines and outline, mm
	lineSpacing   FloatPair
	borderSpacing FloatPair
	starDiameter  float64
	starPos       StarPointSpec
	xAnnotation   AnnotationStyle
	yAnnotation   AnnotationStyle
	fontFace      string
	fontSize      float64
	outline       bool
}

// NewBoardSpec resolves defaults for omitted options, normalizes
// scalar-or-pair values and validates everything eagerly. All
// validation failures wrap one of the package sentinel errors.
func NewBoardSpec(opts BoardOptions) (*BoardSpec, error) {
	size := defaultSize
	if opts.Size != nil {
		size = *opts.Size
	}
	if size.Cols < 2 || size.Rows < 2 {
		return nil, fmt.Errorf("board size %dx%d: each axis needs at least 2 lines: %w",
			size.Cols, size.Rows, ErrInvalidDimension)
	}

	widths := defaultLineWidths
	if opts.LineWidths != nil {
		widths = *opts.LineWidths
	}
	if widths.X <= 0 || widths.Y <= 0 {
		return nil, fmt.Errorf("line widths (%g, %g) must be positive: %w",
			widths.X, widths.Y, ErrInvalidSpacingOrWidth)
	}
	// The grid is never stroked thicker than the border.
	gridWidth, borderWidth := widths.X, widths.Y
	if gridWidth > borderWidth {
		gridWidth, borderWidth = borderWidth, gridWidth
	}

	spacing := defaultLineSpacing
	if opts.LineSpacing != nil {
		spacing = *opts.LineSpacing
	}
	if spacing.X <= 0 || spacing.Y <= 0 {
		return nil, fmt.Errorf("line spacing (%g, %g) must be positive: %w",
			spacing.X, spacing.Y, ErrInvalidSpacingOrWidth)
	}

	border := defaultBorderSpacing
	if opts.BorderSpacing != nil {
		border = *opts.BorderSpacing
	}
	if border.X <= 0 || border.Y <= 0 {
		return nil, fmt.Errorf("border spacing (%g, %g) must be positive: %w",
			border.X, border.Y, ErrInvalidSpacingOrWidth)
	}

	starDiameter := getFloat64(opts.StarPointDiameter, defaultStarPointDiameter)
	if starDiameter < 0 {
		return nil, fmt.Errorf("star point diameter %g must not be negative: %w",
			starDiameter, ErrInvalidSpacingOrWidth)
	}

	starPos := StarPointsAuto()
	if opts.StarPointPos != nil {
		starPos = *opts.StarPointPos
	}
	switch starPos.mode {
	case starEvery:
		if starPos.every < 1 {
			return nil, fmt.Errorf("star point stride %d must be at least 1: %w",
				starPos.every, ErrInvalidStarPoint)
		}
	case starExplicit:
		for _, p := range starPos.points {
			if p.Col < 0 || p.Col >= size.Cols || p.Row < 0 || p.Row >= size.Rows {
				return nil, fmt.Errorf("star point (%d, %d) outside %dx%d grid: %w",
					p.Col, p.Row, size.Cols, size.Rows, ErrInvalidStarPoint)
			}
		}
	}

	xAnnotation, err := normalizeAnnotation(opts.XAnnotation)
	if err != nil {
		return nil, fmt.Errorf("x_annotation: %w", err)
	}
	yAnnotation, err := normalizeAnnotation(opts.YAnnotation)
	if err != nil {
		return nil, fmt.Errorf("y_annotation: %w", err)
	}

	fontSize := getFloat64(opts.FontSize, defaultFontSize)
	if fontSize <= 0 {
		return nil, fmt.Errorf("font size %g must be positive: %w", fontSize, ErrInvalidSpacingOrWidth)
	}

	return &BoardSpec{
		size:          size,
		gridWidth:     gridWidth,
		borderWidth:   borderWidth,
		lineSpacing:   spacing,
		borderSpacing: border,
		starDiameter:  starDiameter,
		starPos:       starPos,
		xAnnotation:   xAnnotation,
		yAnnotation:   yAnnotation,
		fontFace:      getString(opts.FontFace, defaultFontFace),
		fontSize:      fontSize,
		outline:       getBool(opts.Outline, true),
	}, nil
}

func normalizeAnnotation(style AnnotationStyle) (AnnotationStyle, error) {
	switch style {
	case AnnotationNone, "none":
		return AnnotationNone, nil
	case AnnotationArabic, AnnotationLatin, AnnotationChinese, AnnotationRoman:
		return style, nil
	default:
		return AnnotationNone, fmt.Errorf("unknown annotation style %q: %w", style, ErrInvalidAnnotationStyle)
	}
}

// Size returns the number of vertical and horizontal grid lines.
func (b *BoardSpec) Size() SizeSpec { return b.size }

// LineSpacing returns the distance between adjacent lines per axis, mm.
func (b *BoardSpec) LineSpacing() FloatPair { return b.lineSpacing }

// BorderSpacing returns the margin outside the outermost lines, mm.
func (b *BoardSpec) BorderSpacing() FloatPair { return b.borderSpacing }

// LineWidths returns the grid and border stroke widths, mm.
func (b *BoardSpec) LineWidths() (grid, border float64) { return b.gridWidth, b.borderWidth }

// StarPointDiameter returns the star point marker diameter, mm.
func (b *BoardSpec) StarPointDiameter() float64 { return b.starDiameter }

// FontFace returns the annotation font, opaque to the layout engine.
func (b *BoardSpec) FontFace() string { return b.fontFace }

// FontSize returns the annotation font size.
func (b *BoardSpec) FontSize() float64 { return b.fontSize }

// Annotations returns the annotation styles for the x and y axis.
func (b *BoardSpec) Annotations() (x, y AnnotationStyle) { return b.xAnnotation, b.yAnnotation }

// PointAt maps a grid index to its physical position on the canvas.
// Line i on an axis sits at border spacing plus i times the line
// spacing, so line 0 is offset from the canvas edge by exactly the
// border spacing.
func (b *BoardSpec) PointAt(col, row int) Point {
	return Point{
		X: b.borderSpacing.X + float64(col)*b.lineSpacing.X,
		Y: b.borderSpacing.Y + float64(row)*b.lineSpacing.Y,
	}
}

// Dimensions returns the canvas extent in mm: the grid span plus the
// border spacing on both ends of each axis.
func (b *BoardSpec) Dimensions() (width, height float64) {
	width = 2*b.borderSpacing.X + float64(b.size.Cols-1)*b.lineSpacing.X
	height = 2*b.borderSpacing.Y + float64(b.size.Rows-1)*b.lineSpacing.Y
	return width, height
}
