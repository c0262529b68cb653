// Package catalog holds the static enrichment-variable catalog and the
// category inference rules used to group variables for prompt construction.
package catalog

import (
	"fmt"
	"strings"

	"github.com/brandresponse/brandintel/internal/model"
)

// Entry describes one enrichment attribute available from the identity
// graph.
type Entry struct {
	Name        string
	Description string
	Category    model.Category
}

// inferenceRules is evaluated top to bottom; the first matching rule wins.
// The order is load-bearing: it keeps variable grouping identical across
// runs and platforms regardless of map iteration order.
var inferenceRules = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryDemographics, []string{"age", "gender", "married", "children", "generation", "birth"}},
	{model.CategoryEconomic, []string{"income", "credit", "investment", "net_worth", "bank"}},
	{model.CategoryLifestyle, []string{"education", "occupation", "dwelling", "urbanicity"}},
	{model.CategoryInterests, []string{"_affinity", "reading_", "music", "sports", "travel"}},
	{model.CategoryShopping, []string{"purchases", "catalog", "recent_"}},
}

// InferCategory classifies an attribute identifier by keyword match against
// its name, first matching rule wins.
func InferCategory(name string) model.Category {
	lower := strings.ToLower(name)
	for _, rule := range inferenceRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return model.CategoryOther
}

// Catalog is an ordered set of enrichment attributes.
type Catalog struct {
	entries []Entry
	byName  map[string]Entry
}

// New builds a catalog from the given entries. Entries without an explicit
// category get one inferred from their name.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		if e.Category == "" {
			e.Category = InferCategory(e.Name)
		}
		c.entries = append(c.entries, e)
		c.byName[e.Name] = e
	}
	return c
}

// Entries returns all catalog entries in definition order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Lookup returns the entry for an attribute name, if present.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// ByCategory returns the entries of one category in definition order.
func (c *Catalog) ByCategory(cat model.Category) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// excerptGroups defines the prompt excerpt: one block per category, in
// fixed order, each capped so the prompt stays a predictable size.
var excerptGroups = []struct {
	category model.Category
	header   string
	cap      int
}{
	{model.CategoryDemographics, "DEMOGRAPHICS", 10},
	{model.CategoryEconomic, "ECONOMIC", 8},
	{model.CategoryLifestyle, "LIFESTYLE", 8},
	{model.CategoryInterests, "INTERESTS & AFFINITIES", 15},
	{model.CategoryShopping, "PURCHASE BEHAVIOR", 10},
}

// PromptExcerpt renders the categorized variable listing embedded in the
// variable-selection prompt.
func (c *Catalog) PromptExcerpt() string {
	var b strings.Builder
	b.WriteString("AVAILABLE VARIABLES FROM IDENTITY GRAPH:\n\n")
	for _, group := range excerptGroups {
		entries := c.ByCategory(group.category)
		if len(entries) == 0 {
			continue
		}
		if len(entries) > group.cap {
			entries = entries[:group.cap]
		}
		b.WriteString(group.header + ":\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "- %s: %s\n", e.Name, e.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
