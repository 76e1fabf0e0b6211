// Package catalogue owns the collection of foods and resolves composite
// references into the in-memory graph.
package catalogue

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ktse/diet-diary/internal/model"
)

var (
	// ErrDuplicateName is returned by Add when the name is already taken.
	ErrDuplicateName = errors.New("duplicate food name")

	// ErrNotFound is returned when a food name is not in the catalogue.
	ErrNotFound = errors.New("food not found")

	// ErrCycle is returned when calorie computation meets a food that is
	// its own ancestor in the component graph.
	ErrCycle = errors.New("cycle detected")
)

// Catalogue is the owning store of all known foods, keyed by unique name.
// Composite foods reference their components by name; the referenced foods
// live in the same catalogue. There is no delete operation, so a component
// reference never dangles once resolved.
type Catalogue struct {
	foods map[string]*model.Food
	dirty bool
}

// New returns an empty catalogue.
func New() *Catalogue {
	return &Catalogue{foods: make(map[string]*model.Food)}
}

// Add inserts a food and marks the catalogue dirty. The name must not
// already be present.
func (c *Catalogue) Add(f *model.Food) error {
	if f.Name == "" {
		return fmt.Errorf("add food: name is required")
	}
	if !model.ValidKinds[f.Kind] {
		return fmt.Errorf("add food %q: unknown kind %q", f.Name, f.Kind)
	}
	if _, ok := c.foods[f.Name]; ok {
		return fmt.Errorf("add food %q: %w", f.Name, ErrDuplicateName)
	}
	c.foods[f.Name] = f
	c.dirty = true
	return nil
}

// Get returns the food with the given name.
func (c *Catalogue) Get(name string) (*model.Food, bool) {
	f, ok := c.foods[name]
	return f, ok
}

// Len returns the number of foods in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.foods)
}

// IsDirty reports whether the catalogue has been modified since the last
// successful Save or Load.
func (c *Catalogue) IsDirty() bool {
	return c.dirty
}

// Names returns all food names in lexicographic order.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.foods))
	for name := range c.foods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calories returns the calories of one serving of the named food. Basic
// foods return their stored value; composite foods return the weighted sum
// over their components, recursively. A food appearing as its own ancestor
// yields ErrCycle.
func (c *Catalogue) Calories(name string) (float64, error) {
	f, ok := c.foods[name]
	if !ok {
		return 0, fmt.Errorf("calories for %q: %w", name, ErrNotFound)
	}
	return c.calories(f, map[string]bool{})
}

func (c *Catalogue) calories(f *model.Food, visiting map[string]bool) (float64, error) {
	if f.Kind == model.KindBasic {
		return f.Calories, nil
	}
	if visiting[f.Name] {
		return 0, fmt.Errorf("%w: %s is its own ancestor", ErrCycle, f.Name)
	}
	visiting[f.Name] = true
	defer delete(visiting, f.Name)

	var total float64
	for _, comp := range f.Components {
		sub, ok := c.foods[comp.Name]
		if !ok {
			// Unresolved references are dropped at load time; a stray one
			// contributes nothing rather than failing the whole food.
			continue
		}
		v, err := c.calories(sub, visiting)
		if err != nil {
			return 0, err
		}
		total += v * comp.Servings
	}
	return total, nil
}

// Summary is one row of a catalogue listing.
type Summary struct {
	Name     string     `json:"name"`
	Kind     model.Kind `json:"type"`
	Calories float64    `json:"calories"`
}

// ListAll returns a name-ordered summary of every food. Composite calories
// are derived; a food whose calories cannot be computed lists zero.
func (c *Catalogue) ListAll() []Summary {
	out := make([]Summary, 0, len(c.foods))
	for _, name := range c.Names() {
		f := c.foods[name]
		cal, _ := c.Calories(name)
		out = append(out, Summary{Name: f.Name, Kind: f.Kind, Calories: cal})
	}
	return out
}

// SearchByKeywords returns foods whose name or keywords contain the query
// keywords as case-insensitive substrings. With matchAll every query
// keyword must match somewhere; otherwise one match suffices. Results are
// in lexicographic name order.
func (c *Catalogue) SearchByKeywords(keywords []string, matchAll bool) []*model.Food {
	var results []*model.Food
	for _, name := range c.Names() {
		f := c.foods[name]
		if matchesKeywords(f, keywords, matchAll) {
			results = append(results, f)
		}
	}
	return results
}

func matchesKeywords(f *model.Food, keywords []string, matchAll bool) bool {
	if len(keywords) == 0 {
		return false
	}
	for _, kw := range keywords {
		found := keywordMatches(f, strings.ToLower(kw))
		if matchAll && !found {
			return false
		}
		if !matchAll && found {
			return true
		}
	}
	return matchAll
}

func keywordMatches(f *model.Food, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(f.Name), lowerQuery) {
		return true
	}
	for _, kw := range f.Keywords {
		if strings.Contains(strings.ToLower(kw), lowerQuery) {
			return true
		}
	}
	return false
}
