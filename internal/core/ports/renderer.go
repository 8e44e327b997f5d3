package ports

import (
	"io"

	"go.trai.ch/droidplan/internal/core/domain"
)

// Renderer writes resolved plans in a user-selected format.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderPlan writes plan to w in the given format ("text", "json" or "yaml").
	RenderPlan(w io.Writer, plan *domain.BuildPlan, format string) error

	// RenderVariants writes the declared build variants to w.
	RenderVariants(w io.Writer, variants []domain.BuildVariant, format string) error
}
