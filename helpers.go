package goban

import "strings"

// --- Default Resolution Helpers ---

// Pointer fields on BoardOptions mean "not set"; these pick the default
// in that case.

func getFloat64(ptr *float64, def float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getBool(ptr *bool, def bool) bool {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getString(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

// --- XML Escaping ---

// escapeXML guards attribute values (font faces in particular) that end
// up inside SVG markup.
func escapeXML(s string) string {
	var buf strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
