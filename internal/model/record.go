package model

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// NormalizeServiceName rewrites a hierarchical service name (`a/b/c`) into its
// namespaced form (`a.b.c`) so similarly named services collapse into one
// reporting bucket. Names without a hierarchy separator pass through unchanged.
func NormalizeServiceName(raw string) string {
	return strings.ReplaceAll(raw, "/", ".")
}

// Record is one reporting group: a service and the values read for it,
// in the order they appeared in the input file.
type Record struct {
	Service string
	Values  []string
}

// ServiceSet is a deduplicated collection of service names.
type ServiceSet struct {
	seen map[string]bool
}

// NewServiceSet creates an empty set.
func NewServiceSet() *ServiceSet {
	return &ServiceSet{seen: make(map[string]bool)}
}

// Add inserts a name, skipping duplicates and empty strings.
func (s *ServiceSet) Add(name string) {
	if name == "" {
		return
	}
	s.seen[name] = true
}

// Contains reports whether name is in the set.
func (s *ServiceSet) Contains(name string) bool {
	return s.seen[name]
}

// Names returns all names sorted for deterministic output.
func (s *ServiceSet) Names() []string {
	names := lo.Keys(s.seen)
	sort.Strings(names)
	return names
}

// Len returns the number of unique names.
func (s *ServiceSet) Len() int {
	return len(s.seen)
}
