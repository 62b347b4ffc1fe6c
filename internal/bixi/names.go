package bixi

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
)

// nameCount is a running count for one case-insensitive name. The display
// name is the first spelling encountered.
type nameCount struct {
	name  string
	key   string
	count int
}

// nameCounter aggregates counts keyed on the case-folded name. A counter is
// not safe for concurrent use.
type nameCounter struct {
	caser   cases.Caser
	index   map[string]int
	entries []nameCount
}

func newNameCounter() *nameCounter {
	return &nameCounter{
		caser: cases.Fold(),
		index: make(map[string]int),
	}
}

func (c *nameCounter) add(name string) {
	key := c.caser.String(name)
	if i, ok := c.index[key]; ok {
		c.entries[i].count++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, nameCount{name: name, key: key, count: 1})
}

func (c *nameCounter) len() int {
	return len(c.entries)
}

// top ranks by descending count, then ascending case-insensitive name, and
// returns at most k entries.
func (c *nameCounter) top(k int) []nameCount {
	if k <= 0 {
		return []nameCount{}
	}

	ranked := slices.Clone(c.entries)
	slices.SortFunc(ranked, func(a, b nameCount) int {
		if a.count != b.count {
			return cmp.Compare(b.count, a.count)
		}
		return cmp.Compare(a.key, b.key)
	})

	return ranked[:min(k, len(ranked))]
}

func sortAlphabetically(entries []nameCount) {
	slices.SortFunc(entries, func(a, b nameCount) int {
		return cmp.Compare(a.key, b.key)
	})
}
