package main

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/usecase"
)

// Renders a resume document JSON file through a template variant to an HTML
// file, for eyeballing template changes without Chrome.
func main() {
	in := "resume.json"
	variant := "professional"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	if len(os.Args) > 2 {
		variant = os.Args[2]
	}

	raw, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	doc, err := usecase.Normalize(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "normalize: %v\n", err)
		os.Exit(2)
	}

	html, err := usecase.RenderHTML("templates", doc, usecase.ParseVariant(variant))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	outFile := filepath.Join("out", "preview_"+variant+".html")
	if err := os.MkdirAll(filepath.Dir(outFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", outFile)
}
