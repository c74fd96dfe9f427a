// generateHTML.go
package goban

import (
	"fmt"
	"strings"
)

// GenerateHTML wraps the SVG board in a minimal standalone page, handy
// for a quick look in a browser before printing or cutting. The SVG is
// embedded inline so the page has no external references.
func GenerateHTML(d *Drawing) (string, error) {
	svgContent := GenerateSVG(d)

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<title>Goban</title>\n")
	page.WriteString("<style>\n")
	page.WriteString("body { margin: 0; padding: 40px; background-color: #f4f4f4; }\n")
	fmt.Fprintf(&page, ".board { margin: 0 auto; width: %.0fmm; box-shadow: 0 2px 8px rgba(0,0,0,0.25); }\n", d.Width)
	page.WriteString(".board svg { display: block; }\n")
	page.WriteString("</style>\n</head>\n<body>\n")
	page.WriteString("<div class=\"board\">\n")
	page.WriteString(svgContent)
	page.WriteString("\n</div>\n")
	page.WriteString("</body>\n</html>")

	return page.String(), nil
}
