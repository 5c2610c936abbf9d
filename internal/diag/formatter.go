package diag

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	noteStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Formatter renders diagnostics with an optional source snippet.
type Formatter struct {
	w           io.Writer
	color       bool
	sourceCache map[string]string // Cache of source files by filename
}

// NewFormatter creates a formatter writing to w. Styling is applied only when
// color is true.
func NewFormatter(w io.Writer, color bool) *Formatter {
	return &Formatter{
		w:           w,
		color:       color,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers source text for filename without touching the disk.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// Format writes d. When the span's file can be loaded the offending line is
// printed with the span underlined; otherwise only the byte range is shown.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	src, err := f.LoadSource(d.Span.Filename)
	if err != nil || src == "" || !d.Span.IsValid() {
		f.formatSimple(d)
	} else {
		f.printSnippet(src, d)
	}

	f.printFooter(d)
}

// printHeader prints the header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}
	if d.Code != "" {
		severity += "[" + string(d.Code) + "]"
	}
	fmt.Fprintf(f.w, "%s: %s\n", f.paint(severityStyle(d.Severity), severity), f.paint(boldStyle, d.Message))
}

func (f *Formatter) formatSimple(d Diagnostic) {
	fmt.Fprintf(f.w, "  %s %s\n", f.paint(gutterStyle, "-->"), d.Span)
}

func (f *Formatter) printSnippet(src string, d Diagnostic) {
	line, column := Position(src, d.Span.Start)
	lines := strings.Split(src, "\n")
	text := lines[line-1]

	name := d.Span.Filename
	if name == "" {
		name = "<input>"
	}

	num := strconv.Itoa(line)
	pad := strings.Repeat(" ", len(num))

	fmt.Fprintf(f.w, "%s%s %s:%d:%d\n", pad, f.paint(gutterStyle, "-->"), name, line, column)
	fmt.Fprintf(f.w, "%s %s\n", pad, f.paint(gutterStyle, "|"))
	fmt.Fprintf(f.w, "%s %s %s\n", f.paint(gutterStyle, num), f.paint(gutterStyle, "|"), text)

	width := d.Span.End - d.Span.Start
	if rest := len(text) - (column - 1); width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	marker := strings.Repeat(" ", column-1) + strings.Repeat("^", width)
	fmt.Fprintf(f.w, "%s %s %s\n", pad, f.paint(gutterStyle, "|"), f.paint(severityStyle(d.Severity), marker))
}

func (f *Formatter) printFooter(d Diagnostic) {
	switch len(d.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(f.w, "  %s expected %s\n", f.paint(gutterStyle, "="), d.Expected[0])
	default:
		fmt.Fprintf(f.w, "  %s expected one of %s\n", f.paint(gutterStyle, "="), strings.Join(d.Expected, ", "))
	}
	for _, note := range d.Notes {
		fmt.Fprintf(f.w, "  %s %s: %s\n", f.paint(gutterStyle, "="), f.paint(noteStyle, "note"), note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.w, "  %s %s: %s\n", f.paint(gutterStyle, "="), f.paint(boldStyle, "help"), d.Help)
	}
}

func (f *Formatter) paint(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}

func severityStyle(s Severity) lipgloss.Style {
	switch s {
	case SeverityWarning:
		return warningStyle
	case SeverityNote:
		return noteStyle
	default:
		return errorStyle
	}
}
