// main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/buffos/go-goban"
)

func main() {
	outputFile := flag.String("o", "", "Output file path (default: stdout)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <board.json> <format>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nArguments:")
		fmt.Fprintln(os.Stderr, "  <board.json>   Path to the board description file.")
		fmt.Fprintln(os.Stderr, "  <format>       Output format (svg, html, png, jpg/jpeg).")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	boardFile := args[0]
	exportFormat := strings.ToLower(args[1])

	supportedFormats := map[string]bool{"svg": true, "html": true, "png": true, "jpg": true, "jpeg": true}
	if !supportedFormats[exportFormat] {
		log.Fatalf("Unsupported export format '%s'. Supported formats: svg, html, png, jpg/jpeg", exportFormat)
	}

	log.Printf("Reading board file: %s", boardFile)
	boardBytes, err := os.ReadFile(boardFile)
	if err != nil {
		log.Fatalf("Error reading board file '%s': %v", boardFile, err)
	}

	var opts goban.BoardOptions
	log.Println("Parsing board JSON...")
	if err := json.Unmarshal(boardBytes, &opts); err != nil {
		log.Fatalf("Error parsing board JSON '%s': %v", boardFile, err)
	}

	spec, err := goban.NewBoardSpec(opts)
	if err != nil {
		log.Fatalf("Invalid board description '%s': %v", boardFile, err)
	}
	drawing, err := spec.BuildLayout()
	if err != nil {
		log.Fatalf("Error building board layout: %v", err)
	}

	// --- Determine Output Writer ---
	var outputWriter io.Writer = os.Stdout
	var outFile *os.File

	if *outputFile != "" {
		log.Printf("Output directed to file: %s", *outputFile)
		outFile, err = os.Create(*outputFile)
		if err != nil {
			log.Fatalf("Error creating output file '%s': %v", *outputFile, err)
		}
		defer func() {
			if outFile != nil {
				if closeErr := outFile.Close(); closeErr != nil {
					log.Printf("Error closing output file '%s': %v", *outputFile, closeErr)
				}
			}
		}()
		outputWriter = outFile
	} else {
		log.Println("Output directed to stdout.")
	}

	// --- Generation ---
	log.Printf("Generating output for format: %s", exportFormat)
	var genErr error

	switch exportFormat {
	case "svg":
		_, genErr = io.WriteString(outputWriter, goban.GenerateSVG(drawing))
		if genErr != nil {
			genErr = fmt.Errorf("failed to write SVG output: %w", genErr)
		}
	case "html":
		pageContent, errHTML := goban.GenerateHTML(drawing)
		if errHTML != nil {
			genErr = fmt.Errorf("HTML generation failed: %w", errHTML)
		} else {
			_, genErr = io.WriteString(outputWriter, pageContent)
			if genErr != nil {
				genErr = fmt.Errorf("failed to write HTML output: %w", genErr)
			}
		}
	case "png", "jpg", "jpeg":
		genErr = goban.GenerateImage(drawing, exportFormat, outputWriter)
	}

	if genErr != nil {
		if outFile != nil && *outputFile != "" {
			log.Printf("Attempting to remove potentially incomplete file: %s", *outputFile)
			if removeErr := os.Remove(*outputFile); removeErr != nil {
				log.Printf("Warning: Could not remove output file '%s' after error: %v", *outputFile, removeErr)
			}
		}
		log.Fatalf("Error generating %s: %v", exportFormat, genErr)
	}

	log.Printf("Successfully generated %s output.", strings.ToUpper(exportFormat))
	if *outputFile != "" {
		log.Printf("Output saved to: %s", *outputFile)
	}
}
