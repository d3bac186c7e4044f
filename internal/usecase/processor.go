package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"resume-builder/internal/model"
)

// Renderer turns an HTML page into PDF bytes. Implemented by the chromedp
// renderer in pkg/infrastructure; stubbed in tests.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Processor owns the export pipeline: document -> HTML template -> PDF.
type Processor struct {
	renderer Renderer
	tplDir   string
}

func NewProcessor(r Renderer, tplDir string) *Processor {
	return &Processor{renderer: r, tplDir: tplDir}
}

// ExportPDF renders the document through the chosen template variant and
// hands the HTML to the PDF renderer. Rendering is retried a few times with
// backoff; the output must carry a PDF signature to count as success.
func (p *Processor) ExportPDF(ctx context.Context, doc model.ResumeDocument, variant TemplateVariant) ([]byte, error) {
	html, err := RenderHTML(p.tplDir, doc, variant)
	if err != nil {
		return nil, err
	}

	var pdfBytes []byte
	var renderErr error
	attempts := 3
	for i := 0; i < attempts; i++ {
		pdfBytes, renderErr = p.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				return pdfBytes, nil
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		log.Printf("processor: render attempt %d failed: %v", i+1, renderErr)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", attempts, renderErr)
}
