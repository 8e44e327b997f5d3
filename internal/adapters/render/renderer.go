// Package render writes build plans as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// Renderer implements ports.Renderer.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderPlan writes plan to w in format.
func (r *Renderer) RenderPlan(w io.Writer, plan *domain.BuildPlan, format string) error {
	switch format {
	case FormatText, "":
		return newTextWriter(w).plan(plan)
	case FormatJSON:
		return writeJSON(w, plan)
	case FormatYAML:
		return writeYAML(w, plan)
	default:
		return unsupported(format)
	}
}

// RenderVariants writes the declared variants to w in format.
func (r *Renderer) RenderVariants(w io.Writer, variants []domain.BuildVariant, format string) error {
	if variants == nil {
		variants = []domain.BuildVariant{}
	}

	switch format {
	case FormatText, "":
		return newTextWriter(w).variants(variants)
	case FormatJSON:
		return writeJSON(w, variants)
	case FormatYAML:
		return writeYAML(w, variants)
	default:
		return unsupported(format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode json output")
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode yaml output")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to encode yaml output")
	}
	return nil
}

func unsupported(format string) error {
	err := zerr.Wrap(domain.ErrUnsupportedFormat, fmt.Sprintf("unknown format %q", format))
	return zerr.With(err, "supported", Formats())
}
