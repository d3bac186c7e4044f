package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

// Offline exporter: reads a resume document from a JSON file and writes the
// text export plus, when Chrome is available, the PDF export.
func main() {
	in := flag.String("in", "resume.json", "resume document JSON file")
	tplDir := flag.String("templates", "templates", "template directory")
	variant := flag.String("template", "professional", "template variant")
	outDir := flag.String("out", "out", "output directory")
	flag.Parse()

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read document: %v", err)
	}
	doc, err := usecase.Normalize(raw)
	if err != nil {
		log.Fatalf("normalize document: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	txtPath := filepath.Join(*outDir, "resume.txt")
	if err := os.WriteFile(txtPath, []byte(usecase.ExportText(doc)), 0o644); err != nil {
		log.Fatalf("write text export: %v", err)
	}
	fmt.Printf("wrote %s\n", txtPath)

	renderer := infra.NewChromedpRenderer(os.Getenv("CHROME_PATH"))
	processor := usecase.NewProcessor(renderer, *tplDir)
	pdfBytes, err := processor.ExportPDF(context.Background(), doc, usecase.ParseVariant(*variant))
	if err != nil {
		// keep the text artifact even when Chrome is unavailable
		log.Printf("pdf export skipped: %v", err)
		return
	}
	pdfPath := filepath.Join(*outDir, "resume.pdf")
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		log.Fatalf("write pdf export: %v", err)
	}
	fmt.Printf("wrote %s\n", pdfPath)
}
