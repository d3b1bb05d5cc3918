package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// SourceCache caches source file contents for diagnostic rendering
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// SetLines stores in-memory source lines for a file, avoiding filesystem
// access when the caller already holds the source text.
func (sc *SourceCache) SetLines(filepath string, lines []string) {
	sc.files[filepath] = lines
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	if lines, ok := sc.files[filepath]; ok {
		if line > 0 && line <= len(lines) {
			return lines[line-1], nil
		}
		return "", fmt.Errorf("line %d out of range", line)
	}

	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	sc.files[filepath] = lines

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}

	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter renders diagnostics for terminal consumption. The core never
// emits by itself; the CLI hands the bag to an emitter.
type Emitter struct {
	cache *SourceCache
	out   io.Writer

	errColor  *color.Color
	warnColor *color.Color
	infoColor *color.Color
	dimColor  *color.Color
}

func NewEmitter() *Emitter {
	return NewEmitterWithWriter(os.Stderr)
}

func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{
		cache:     NewSourceCache(),
		out:       w,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow, color.Bold),
		infoColor: color.New(color.FgCyan, color.Bold),
		dimColor:  color.New(color.Faint),
	}
}

// SetSourceLines pre-populates the source cache for a file
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.SetLines(filepath, lines)
}

// Emit renders a single diagnostic
func (e *Emitter) Emit(filepath string, diag *Diagnostic) {
	if diag.FilePath != "" {
		filepath = diag.FilePath
	}

	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(filepath, label, diag.Severity)
	}

	for _, note := range diag.Notes {
		fmt.Fprintf(e.out, "  %s %s\n", e.dimColor.Sprint("note:"), note.Message)
	}

	if diag.Help != "" {
		fmt.Fprintf(e.out, "  %s %s\n", e.dimColor.Sprint("help:"), diag.Help)
	}

	fmt.Fprintln(e.out)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	severity := e.severityColor(diag.Severity).Sprint(diag.Severity.String())

	tag := diag.Category.String()
	if diag.Code != "" {
		tag += ":" + diag.Code
	}

	fmt.Fprintf(e.out, "%s[%s]: %s\n", severity, tag, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil {
		return
	}

	start := label.Location.Start
	fmt.Fprintf(e.out, "  %s %s:%d:%d\n", e.dimColor.Sprint("-->"), filepath, start.Line, start.Column)

	line, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}

	fmt.Fprintf(e.out, "  %s\n", e.dimColor.Sprintf("%4d | ", start.Line)+line)

	marker := "^"
	if label.Style == Secondary {
		marker = "-"
	}

	width := label.Location.End.Column - start.Column
	if label.Location.End.Line != start.Line || width < 1 {
		width = 1
	}

	underline := strings.Repeat(" ", start.Column-1) + strings.Repeat(marker, width)
	rendered := e.severityColor(severity).Sprint(underline)
	if label.Message != "" {
		rendered += " " + label.Message
	}
	fmt.Fprintf(e.out, "  %s%s\n", e.dimColor.Sprint("     | "), rendered)
}

func (e *Emitter) severityColor(s Severity) *color.Color {
	switch s {
	case Error:
		return e.errColor
	case Warning:
		return e.warnColor
	default:
		return e.infoColor
	}
}
