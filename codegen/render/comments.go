package render

import (
	"fmt"
	"strings"
)

// DocComment reformats free-form documentation text as a block of Swift doc
// comment lines, one output line per input line, each prefixed with indent.
// Blank lines (empty or whitespace-only) become a bare "///" marker with no
// trailing space; other lines keep their content untouched after "/// ".
// Both LF and CRLF input are accepted. The result carries no trailing
// newline.
func DocComment(text, indent string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			out[i] = indent + "///"
			continue
		}
		out[i] = indent + "/// " + line
	}
	return strings.Join(out, "\n")
}

// HeaderComment renders the generated-code banner placed at the top of every
// generated Swift file. moduleName is embedded verbatim; schema module names
// are assumed free of comment-breaking sequences.
func HeaderComment(moduleName string) string {
	return fmt.Sprintf("// Code generated from schema module `%s`. DO NOT EDIT.", moduleName)
}
