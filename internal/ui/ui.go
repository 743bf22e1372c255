// Package ui holds the terminal presentation helpers shared by commands:
// colored language tags, humanized sizes, and path truncation.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/davidMuir/clean-deps/internal/scan"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorDotnet = lipgloss.Color("12") // blue
	ColorJS     = lipgloss.Color("11") // yellow
	ColorRust   = lipgloss.Color("9")  // red
	ColorMuted  = lipgloss.Color("8")
)

// colorEnabled is false when stdout is not a terminal, so piped output stays
// plain text.
var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

// ─── Rendering ───────────────────────────────────────────────────────────────

// tagLabel is the short display name used in language tags.
func tagLabel(l scan.Language) string {
	if l == scan.JavaScript {
		return "js"
	}
	return l.String()
}

// LanguageTag renders a bracketed, colored tag for the language,
// e.g. "[js]" in yellow.
func LanguageTag(l scan.Language) string {
	var c lipgloss.Color
	switch l {
	case scan.Dotnet:
		c = ColorDotnet
	case scan.JavaScript:
		c = ColorJS
	case scan.Rust:
		c = ColorRust
	default:
		c = ColorMuted
	}
	return "[" + render(lipgloss.NewStyle().Foreground(c), tagLabel(l)) + "]"
}

// FormatSize renders a byte count in SI units, e.g. "1.2 MB".
func FormatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// TruncatePath shortens a path to at most roughly max columns by replacing
// the middle with "[...]". Short paths are returned unchanged.
func TruncatePath(path string, max int) string {
	if len(path) <= max || max < 12 {
		return path
	}
	head := path[:max/2-5]
	tail := path[len(path)-max/2:]
	return head + "[...]" + tail
}
