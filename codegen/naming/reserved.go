package naming

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed reserved.yaml
var reservedYAML []byte

// reserved indexes every Swift reserved word for O(1) membership tests. It is
// populated once at init and never written to again.
var reserved map[string]struct{}

func init() {
	var table struct {
		Declarations []string `yaml:"declarations"`
		Statements   []string `yaml:"statements"`
		Expressions  []string `yaml:"expressions"`
	}
	if err := yaml.Unmarshal(reservedYAML, &table); err != nil {
		panic(fmt.Sprintf("naming: invalid reserved word table: %v", err))
	}
	reserved = make(map[string]struct{})
	for _, group := range [][]string{table.Declarations, table.Statements, table.Expressions} {
		for _, w := range group {
			reserved[w] = struct{}{}
		}
	}
}

// IsReserved reports whether word is a Swift reserved word. The match is
// exact and case-sensitive.
func IsReserved(word string) bool {
	_, ok := reserved[word]
	return ok
}

// ReservedWords returns the Swift reserved words in lexicographic order. The
// returned slice is a copy; callers may modify it freely.
func ReservedWords() []string {
	words := make([]string, 0, len(reserved))
	for w := range reserved {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
