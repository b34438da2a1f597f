package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/datacube-go/agdcmeta/internal/config"
)

// Color palette, shared with the rest of the tool's terminal output.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// styles renders decorations for one output stream. When disabled every
// method returns its input unchanged, which keeps piped output plain.
type styles struct {
	enabled bool
	heading lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer, colorMode string) styles {
	r := lipgloss.NewRenderer(w)
	enabled := colorEnabled(w, colorMode)
	if enabled && colorMode == config.ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	return styles{
		enabled: enabled,
		heading: r.NewStyle().Bold(true).Foreground(colorPrimary),
		ok:      r.NewStyle().Foreground(colorSuccess),
		fail:    r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s styles) Heading(text string) string { return s.render(s.heading, text) }
func (s styles) OK(text string) string      { return s.render(s.ok, text) }
func (s styles) Fail(text string) string    { return s.render(s.fail, text) }
func (s styles) Muted(text string) string   { return s.render(s.muted, text) }

// colorEnabled decides whether to decorate output written to w.
//
// Returns false if:
//   - color is "never"
//   - NO_COLOR is set (accessibility/automation indicator)
//   - w is not a terminal and color is "auto"
func colorEnabled(w io.Writer, colorMode string) bool {
	switch colorMode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
