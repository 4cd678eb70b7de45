// Package catalog holds the static table of known blood-test parameters:
// canonical name, unit, reference range, and alias labels. The catalog is
// built once at startup and read-only afterwards, so it can be shared across
// concurrent pipeline invocations without locking.
package catalog

import (
	"fmt"
	"strings"

	"github.com/medalizer/blood-report-analyzer/constants"
)

// Entry is one known parameter. Invariant: Min <= Max.
type Entry struct {
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Aliases []string
}

// Classify places a measured value relative to the entry's reference range.
func (e Entry) Classify(value float64) constants.MetricStatus {
	switch {
	case value < e.Min:
		return constants.MetricLow
	case value > e.Max:
		return constants.MetricHigh
	default:
		return constants.MetricNormal
	}
}

// Catalog is an ordered parameter table. Order matters: label resolution is
// first-match-wins in insertion order, so reordering entries changes which
// entry an ambiguous label resolves to.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from entries, validating each one. Names are stored
// lower-cased; duplicates are rejected.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: make([]Entry, 0, len(entries))}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		name := strings.ToLower(strings.TrimSpace(e.Name))
		if name == "" {
			return nil, fmt.Errorf("catalog entry with empty name")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", name)
		}
		if e.Min > e.Max {
			return nil, fmt.Errorf("catalog entry %q: min %v > max %v", name, e.Min, e.Max)
		}
		seen[name] = struct{}{}
		aliases := make([]string, len(e.Aliases))
		for i, a := range e.Aliases {
			aliases[i] = strings.ToLower(strings.TrimSpace(a))
		}
		e.Name = name
		e.Aliases = aliases
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Entries returns the catalog in iteration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Resolve matches a candidate label against the catalog. The label is
// lower-cased and tested by substring containment against each entry's name
// and aliases; the first entry that matches wins. No scoring or longest-match
// preference is applied: callers that need a different tie-break must reorder
// the table.
func (c *Catalog) Resolve(label string) (Entry, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return Entry{}, false
	}
	for _, e := range c.entries {
		if strings.Contains(label, e.Name) {
			return e, true
		}
		for _, a := range e.Aliases {
			if a != "" && strings.Contains(label, a) {
				return e, true
			}
		}
	}
	return Entry{}, false
}
