package goban

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"
)

// GenerateSVG serializes a Drawing to an SVG document. The canvas is
// declared in mm with a matching viewBox, so one user unit is one
// millimeter and the file prints at true scale. Output is fully
// deterministic for a given Drawing, which the snapshot tests rely on.
func GenerateSVG(d *Drawing) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startunit(d.Width, d.Height, "mm",
		fmt.Sprintf(`viewBox="0 0 %.3f %.3f"`, d.Width, d.Height))
	canvas.Rect(0, 0, d.Width, d.Height, "fill:white")

	for _, line := range d.Lines {
		canvas.Line(line.From.X, line.From.Y, line.To.X, line.To.Y,
			fmt.Sprintf("stroke:black;stroke-width:%.3f;stroke-linecap:round", line.Width))
	}

	if d.Outline != nil {
		canvas.Roundrect(d.Outline.X, d.Outline.Y, d.Outline.Width, d.Outline.Height,
			d.Outline.Radius, d.Outline.Radius,
			fmt.Sprintf("fill:none;stroke:black;stroke-width:%.3f", d.Outline.StrokeWidth))
	}

	for _, circle := range d.Circles {
		canvas.Circle(circle.Center.X, circle.Center.Y, circle.Diameter/2, "fill:black")
	}

	for _, text := range d.Texts {
		canvas.Text(text.Pos.X, text.Pos.Y, text.Content,
			fmt.Sprintf("font-family:%s;font-size:%.3fpx;fill:black;text-anchor:middle;dominant-baseline:middle",
				escapeXML(text.FontFace), text.FontSize))
	}

	canvas.End()
	return buf.String()
}
