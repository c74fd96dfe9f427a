package goban

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSVGSnapshots renders every board description under testdata and
// compares the SVG against the stored snapshot. A missing snapshot is
// created on the first run.
func TestSVGSnapshots(t *testing.T) {
	boardFiles, err := filepath.Glob(filepath.Join("testdata", "*.board.json"))
	if err != nil {
		t.Fatalf("Error finding board files: %v", err)
	}
	if len(boardFiles) == 0 {
		t.Fatalf("No board files found in testdata")
	}

	for _, boardFile := range boardFiles {
		baseName := strings.TrimSuffix(filepath.Base(boardFile), ".board.json")
		t.Run(baseName, func(t *testing.T) {
			expectedSVGFile := filepath.Join("testdata", baseName+".expected.svg")

			boardBytes, err := os.ReadFile(boardFile)
			if err != nil {
				t.Fatalf("Error reading board file %s: %v", boardFile, err)
			}
			var opts BoardOptions
			if err := json.Unmarshal(boardBytes, &opts); err != nil {
				t.Fatalf("Error unmarshalling board %s: %v", boardFile, err)
			}

			spec, err := NewBoardSpec(opts)
			if err != nil {
				t.Fatalf("Error building spec for %s: %v", baseName, err)
			}
			drawing, err := spec.BuildLayout()
			if err != nil {
				t.Fatalf("Error building layout for %s: %v", baseName, err)
			}
			generatedSVG := GenerateSVG(drawing)

			expectedSVGBytes, err := os.ReadFile(expectedSVGFile)
			if err != nil {
				if os.IsNotExist(err) {
					t.Logf("Expected SVG file %s not found. Creating it.", expectedSVGFile)
					if writeErr := os.WriteFile(expectedSVGFile, []byte(generatedSVG), 0644); writeErr != nil {
						t.Errorf("Failed to write new expected SVG %s: %v", expectedSVGFile, writeErr)
					}
					return
				}
				t.Fatalf("Error reading expected SVG file %s: %v", expectedSVGFile, err)
			}

			normalizedGenerated := strings.ReplaceAll(generatedSVG, "\r\n", "\n")
			normalizedExpected := strings.ReplaceAll(string(expectedSVGBytes), "\r\n", "\n")

			if normalizedGenerated != normalizedExpected {
				diff := findFirstDifference(normalizedExpected, normalizedGenerated)
				t.Errorf("Generated SVG for %s does not match %s.\nFirst difference near character %d:\nEXPECTED:\n...%s...\nGOT:\n...%s...",
					baseName, expectedSVGFile,
					diff.Index, diff.ExpectedContext, diff.GotContext)
				failedFile := filepath.Join("testdata", baseName+".failed.svg")
				os.WriteFile(failedFile, []byte(generatedSVG), 0644)
				t.Logf("Wrote differing output to %s", failedFile)
			}
		})
	}
}

func TestGenerateSVGStructure(t *testing.T) {
	spec, err := NewBoardSpec(BoardOptions{})
	if err != nil {
		t.Fatalf("NewBoardSpec: %v", err)
	}
	drawing, err := spec.BuildLayout()
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	out := GenerateSVG(drawing)

	if !strings.Contains(out, `mm"`) {
		t.Errorf("SVG canvas is not declared in mm:\n%s", out[:200])
	}
	if !strings.Contains(out, `viewBox="0 0 198.000 213.600"`) {
		t.Errorf("SVG misses the mm-matching viewBox")
	}
	if got := strings.Count(out, "<line"); got != 18 {
		t.Errorf("Expected 18 line elements for a 9x9 board, got %d", got)
	}
	if got := strings.Count(out, "<circle"); got != 9 {
		t.Errorf("Expected 9 star point circles for a 9x9 board, got %d", got)
	}
	if !strings.Contains(out, "</svg>") {
		t.Errorf("SVG document is not closed")
	}
}

func TestGenerateHTMLEmbedsSVG(t *testing.T) {
	spec, err := NewBoardSpec(BoardOptions{})
	if err != nil {
		t.Fatalf("NewBoardSpec: %v", err)
	}
	drawing, err := spec.BuildLayout()
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	page, err := GenerateHTML(drawing)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Errorf("HTML preview misses the doctype")
	}
	if !strings.Contains(page, "<svg") || !strings.Contains(page, "</svg>") {
		t.Errorf("HTML preview does not embed the SVG board")
	}
}

// diffResult helps show context around the first difference.
type diffResult struct {
	Index           int
	ExpectedContext string
	GotContext      string
}

// findFirstDifference finds the first differing character and provides context.
func findFirstDifference(s1, s2 string) diffResult {
	limit := len(s1)
	if len(s2) < limit {
		limit = len(s2)
	}
	idx := -1
	for i := 0; i < limit; i++ {
		if s1[i] != s2[i] {
			idx = i
			break
		}
	}
	if idx == -1 && len(s1) != len(s2) {
		idx = limit
	}
	if idx == -1 {
		return diffResult{Index: 0, ExpectedContext: "(Strings are identical)", GotContext: "(Strings are identical)"}
	}

	contextSize := 20
	start := idx - contextSize
	if start < 0 {
		start = 0
	}
	endS1 := idx + contextSize
	if endS1 > len(s1) {
		endS1 = len(s1)
	}
	endS2 := idx + contextSize
	if endS2 > len(s2) {
		endS2 = len(s2)
	}

	return diffResult{
		Index:           idx,
		ExpectedContext: s1[start:endS1],
		GotContext:      s2[start:endS2],
	}
}
