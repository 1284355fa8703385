package render

import "strings"

// Imports renders a list of import paths as Swift import statements.
// Duplicate paths are dropped, keeping the first occurrence so the caller's
// ordering is preserved. The result always ends in exactly one newline; an
// empty list renders as a single newline.
func Imports(paths []string) string {
	seen := make(map[string]struct{}, len(paths))
	lines := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		lines = append(lines, "import "+p)
	}
	return strings.Join(lines, "\n") + "\n"
}
