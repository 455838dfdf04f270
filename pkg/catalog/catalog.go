// Package catalog holds the reference card for every algorithm and data
// structure: complexities, properties and prose. Entries are embedded from
// catalog.yaml and keyed by slug ("bubble-sort", "queue-operations", "tree").
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/aretw0/algotrace/pkg/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var raw []byte

// Keys for the two entries that are not in domain.Algorithms.
const (
	TreeKey  = "tree"
	GraphKey = "graph"
)

// Info is one catalog entry.
type Info struct {
	Key             string   `json:"key" yaml:"-"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	TimeComplexity  string   `json:"timeComplexity" yaml:"timeComplexity"`
	SpaceComplexity string   `json:"spaceComplexity" yaml:"spaceComplexity"`
	BestCase        string   `json:"bestCase" yaml:"bestCase"`
	AverageCase     string   `json:"averageCase" yaml:"averageCase"`
	WorstCase       string   `json:"worstCase" yaml:"worstCase"`
	Stable          bool     `json:"stable" yaml:"stable"`
	InPlace         bool     `json:"inPlace" yaml:"inPlace"`
	HowItWorks      []string `json:"howItWorks" yaml:"howItWorks"`
	Advantages      []string `json:"advantages" yaml:"advantages"`
	Disadvantages   []string `json:"disadvantages" yaml:"disadvantages"`
	UseCases        []string `json:"useCases" yaml:"useCases"`
}

// Catalog is an ordered, read-only set of entries.
type Catalog struct {
	order   []string
	entries map[string]Info
}

// Parse decodes a catalog document. Every key must have a name.
func Parse(data []byte) (*Catalog, error) {
	var entries map[string]Info
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c := &Catalog{entries: make(map[string]Info, len(entries))}
	for key, info := range entries {
		if info.Name == "" {
			return nil, fmt.Errorf("catalog entry %q has no name", key)
		}
		info.Key = key
		c.entries[key] = info
	}

	// Algorithms first in enumeration order, then the structures.
	for _, a := range domain.Algorithms {
		if _, ok := c.entries[a.Slug()]; ok {
			c.order = append(c.order, a.Slug())
		}
	}
	for _, key := range []string{TreeKey, GraphKey} {
		if _, ok := c.entries[key]; ok {
			c.order = append(c.order, key)
		}
	}
	return c, nil
}

var loadEmbedded = sync.OnceValues(func() (*Catalog, error) {
	return Parse(raw)
})

// Load returns the embedded catalog. It is parsed once.
func Load() (*Catalog, error) {
	return loadEmbedded()
}

// All returns entries in catalog order.
func (c *Catalog) All() []Info {
	out := make([]Info, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.entries[key])
	}
	return out
}

// Lookup finds an entry by slug, display name or anything domain.ParseAlgorithm accepts.
func (c *Catalog) Lookup(name string) (Info, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if info, ok := c.entries[key]; ok {
		return info, nil
	}
	switch key {
	case "bst", "binary search tree", "tree operations":
		return c.lookupKey(TreeKey, name)
	case "graph operations":
		return c.lookupKey(GraphKey, name)
	}
	alg, err := domain.ParseAlgorithm(name)
	if err != nil {
		return Info{}, err
	}
	return c.lookupKey(alg.Slug(), name)
}

// For returns the entry of an Algorithm.
func (c *Catalog) For(alg domain.Algorithm) (Info, error) {
	return c.lookupKey(alg.Slug(), alg.String())
}

func (c *Catalog) lookupKey(key, name string) (Info, error) {
	info, ok := c.entries[key]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, name)
	}
	return info, nil
}

// Markdown renders an entry as a markdown document.
func Markdown(info Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", info.Name, info.Description)

	b.WriteString("## Complexity\n\n")
	b.WriteString("| Measure | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Time | %s |\n", info.TimeComplexity)
	fmt.Fprintf(&b, "| Space | %s |\n", info.SpaceComplexity)
	fmt.Fprintf(&b, "| Best case | %s |\n", info.BestCase)
	fmt.Fprintf(&b, "| Average case | %s |\n", info.AverageCase)
	fmt.Fprintf(&b, "| Worst case | %s |\n", info.WorstCase)
	fmt.Fprintf(&b, "| Stable | %s |\n", yesNo(info.Stable))
	fmt.Fprintf(&b, "| In-place | %s |\n\n", yesNo(info.InPlace))

	section(&b, "How it works", info.HowItWorks, true)
	section(&b, "Advantages", info.Advantages, false)
	section(&b, "Disadvantages", info.Disadvantages, false)
	section(&b, "Use cases", info.UseCases, false)
	return b.String()
}

func section(b *strings.Builder, title string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for i, item := range items {
		if numbered {
			fmt.Fprintf(b, "%d. %s\n", i+1, item)
		} else {
			fmt.Fprintf(b, "- %s\n", item)
		}
	}
	b.WriteString("\n")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
