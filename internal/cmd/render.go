package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"dart2figma/internal/widgets"
)

var (
	typeColor    = color.New(color.FgCyan, color.Bold)
	unknownColor = color.New(color.FgYellow)
	propColor    = color.New(color.Faint)
)

// renderTree prints a widget tree as an indented outline.
func renderTree(w io.Writer, widget *widgets.Widget, depth int) {
	indent := strings.Repeat("  ", depth)

	name := typeColor.Sprint(widget.Type)
	if widget.IsUnknown() {
		name = unknownColor.Sprint(widget.Type)
	}

	slot := ""
	if widget.Slot != "" {
		slot = propColor.Sprintf("%s: ", widget.Slot)
	}

	fmt.Fprintf(w, "%s%s%s%s\n", indent, slot, name, renderProps(widget))

	for _, child := range widget.Children {
		renderTree(w, child, depth+1)
	}
}

func renderProps(widget *widgets.Widget) string {
	if len(widget.Properties) == 0 {
		return ""
	}

	names := make([]string, 0, len(widget.Properties))
	for name := range widget.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+renderValue(widget.Properties[name]))
	}
	return propColor.Sprintf(" (%s)", strings.Join(parts, ", "))
}

func renderValue(v widgets.Value) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", val)
	case widgets.ExprRef:
		return val.Text
	case []widgets.Value:
		parts := make([]string, 0, len(val))
		for _, elem := range val {
			parts = append(parts, renderValue(elem))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(val)
	}
}
