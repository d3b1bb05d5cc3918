package diagnostics

import (
	"dart2figma/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Category classifies a diagnostic by the pipeline concern that produced it.
// The last four are reserved for the downstream node-creation and theming
// collaborators, which share this taxonomy.
type Category int

const (
	Syntax Category = iota
	Widget
	Theme
	Conversion
	Variable
	FigmaAPI
	Validation
)

func (c Category) String() string {
	switch c {
	case Syntax:
		return "SYNTAX"
	case Widget:
		return "WIDGET"
	case Theme:
		return "THEME"
	case Conversion:
		return "CONVERSION"
	case Variable:
		return "VARIABLE"
	case FigmaAPI:
		return "FIGMA_API"
	case Validation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a recoverable issue found during lexing, parsing
// or extraction. Diagnostics are pure data: they are collected per run and
// returned alongside the stage's product, never thrown across stages.
type Diagnostic struct {
	Severity Severity
	Category Category
	Message  string
	Code     string // Diagnostic code like "SYN001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the issue
}

// NewError creates a new error diagnostic
func NewError(category Category, message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Category: category,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewWarning creates a new warning diagnostic
func NewWarning(category Category, message string) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Category: category,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewInfo creates a new info diagnostic
func NewInfo(category Category, message string) *Diagnostic {
	return &Diagnostic{
		Severity: Info,
		Category: category,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// WithCode sets the diagnostic code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(filepath string, loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = filepath
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds a primary labeled location
func (d *Diagnostic) WithPrimaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(filepath, loc, message, Primary)
}

// WithSecondaryLabel adds a secondary labeled location
func (d *Diagnostic) WithSecondaryLabel(filepath string, loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(filepath, loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets a helpful suggestion for fixing the issue
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// PrimaryLocation returns the location of the first primary label, or nil.
func (d *Diagnostic) PrimaryLocation() *source.Location {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return label.Location
		}
	}
	return nil
}
