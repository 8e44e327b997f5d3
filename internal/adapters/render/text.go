package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/droidplan/internal/ui/output"
	"go.trai.ch/droidplan/internal/ui/style"
	"go.trai.ch/zerr"
)

const labelWidth = 15

// textWriter accumulates the human-readable rendering of a plan.
type textWriter struct {
	w       io.Writer
	b       strings.Builder
	heading lipgloss.Style
	faint   lipgloss.Style
	warn    lipgloss.Style
	accent  lipgloss.Style
}

func newTextWriter(w io.Writer) *textWriter {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	return &textWriter{
		w:       w,
		heading: style.Heading.Renderer(r),
		faint:   r.NewStyle().Foreground(style.Slate),
		warn:    r.NewStyle().Foreground(style.Yellow),
		accent:  r.NewStyle().Foreground(style.Dart),
	}
}

func (t *textWriter) plan(p *domain.BuildPlan) error {
	if p == nil {
		return nil
	}

	t.line("%s %s", t.heading.Render("Build plan"), t.accent.Render(p.Variant.Name))
	t.field("fingerprint", p.Fingerprint)

	t.section("Target")
	target := p.Target
	t.field("namespace", target.Namespace)
	t.field("applicationId", target.ApplicationID)
	t.field("sdk", fmt.Sprintf("min %d %s target %d %s compile %d",
		target.SDK.Min, style.Dot, target.SDK.Target, style.Dot, target.SDK.Compile))
	t.field("version", fmt.Sprintf("%s (%d)", target.VersionName, target.VersionCode))
	t.field("ndk", target.NDKVersion)
	if c := target.Compile; c.SourceCompatibility != "" || c.TargetCompatibility != "" {
		t.field("java", fmt.Sprintf("source %s %s target %s", orDash(c.SourceCompatibility), style.Dot, orDash(c.TargetCompatibility)))
	}
	t.field("jvmTarget", target.Kotlin.JVMTarget)
	if len(target.Kotlin.FreeCompilerArgs) > 0 {
		t.field("compilerArgs", strings.Join(target.Kotlin.FreeCompilerArgs, " "))
	}
	t.field("flutter", p.FlutterSource)

	t.section("Plugins")
	for _, plugin := range p.Plugins {
		line := fmt.Sprintf("  %d. %s", plugin.Position+1, plugin.ID)
		if plugin.Version != "" {
			line += " " + plugin.Version
		}
		if !plugin.Apply {
			line += " " + t.faint.Render("(not applied)")
		}
		if len(plugin.After) > 0 {
			line += " " + t.faint.Render(style.Arrow+" after "+strings.Join(plugin.After, ", "))
		}
		t.line("%s", line)
	}

	if g := p.Dependencies; g != nil {
		if len(g.Platforms) > 0 {
			t.section("Platforms")
			for _, platform := range g.Platforms {
				pinned := 0
				for range g.PinnedBy(platform) {
					pinned++
				}
				t.line("  %s %-18s %s %s", style.Dot, platform.Configuration, platform.String(),
					t.faint.Render(fmt.Sprintf("pins %d", pinned)))
			}
		}

		t.section("Dependencies")
		for d := range g.Walk() {
			line := fmt.Sprintf("  %-18s %s", d.Coordinate.Configuration, d.Coordinate.String())
			if d.PinnedBy != "" {
				line += " " + t.faint.Render(style.Arrow+" "+d.PinnedBy)
			}
			if d.Overrides != "" {
				line += " " + t.warn.Render("(platform pins "+d.Overrides+")")
			}
			t.line("%s", line)
		}
	}

	t.section("Variant")
	t.field("name", p.Variant.Name)
	t.field("signing", p.Variant.Signing.SigningConfig)
	t.field("debuggable", yesNo(p.Variant.Debuggable))
	t.field("minify", yesNo(p.Variant.MinifyEnabled))
	t.field("shrink", yesNo(p.Variant.ShrinkResources))

	if len(p.Warnings) > 0 {
		t.section("Warnings")
		for _, w := range p.Warnings {
			t.line("  %s", t.warn.Render(style.Warning+" "+w))
		}
	}

	return t.flush()
}

func (t *textWriter) variants(variants []domain.BuildVariant) error {
	t.line("%s", t.heading.Render("Build variants"))
	for _, v := range variants {
		pad := max(labelWidth-len(v.Name), 1)
		t.line("  %s %s%s%s", style.Dot, v.Name, strings.Repeat(" ", pad), t.faint.Render(describeVariant(v)))
	}
	return t.flush()
}

func describeVariant(v domain.BuildVariant) string {
	parts := []string{"signing " + v.Signing.SigningConfig}
	if v.Debuggable {
		parts = append(parts, "debuggable")
	}
	if v.MinifyEnabled {
		parts = append(parts, "minify")
	}
	if v.ShrinkResources {
		parts = append(parts, "shrink")
	}
	return strings.Join(parts, ", ")
}

func (t *textWriter) section(title string) {
	t.b.WriteString("\n")
	t.line("%s", t.heading.Render(title))
}

// field writes an aligned label/value line and skips empty values.
func (t *textWriter) field(label, value string) {
	if value == "" {
		return
	}
	pad := max(labelWidth-len(label), 1)
	t.line("  %s%s%s", t.faint.Render(label), strings.Repeat(" ", pad), value)
}

func (t *textWriter) line(format string, args ...any) {
	fmt.Fprintf(&t.b, format, args...)
	t.b.WriteString("\n")
}

func (t *textWriter) flush() error {
	if _, err := io.WriteString(t.w, t.b.String()); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
