package usecase

import (
	"bytes"
	"html/template"
	"path/filepath"

	"resume-builder/internal/model"
)

// TemplateVariant selects one of the fixed visual layouts.
type TemplateVariant string

const (
	VariantProfessional TemplateVariant = "professional"
	VariantCreative     TemplateVariant = "creative"
	VariantExecutive    TemplateVariant = "executive"
)

// ParseVariant maps a caller-supplied identifier to a variant. Unknown
// identifiers fall back to the professional layout instead of failing.
func ParseVariant(s string) TemplateVariant {
	switch TemplateVariant(s) {
	case VariantProfessional, VariantCreative, VariantExecutive:
		return TemplateVariant(s)
	}
	return VariantProfessional
}

var renderFuncs = template.FuncMap{
	"daterange": dateRange,
}

// RenderHTML renders the document through the named template variant. The
// rendering is a pure function of (document, variant): no state, no
// mutation of the document.
func RenderHTML(tplDir string, doc model.ResumeDocument, variant TemplateVariant) (string, error) {
	name := string(variant) + ".html"
	tpl, err := template.New(name).Funcs(renderFuncs).ParseFiles(filepath.Join(tplDir, name))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
