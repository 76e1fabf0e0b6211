package catalogue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ktse/diet-diary/internal/model"
)

// Load reads a flat list of food records from path and rebuilds the
// reference graph. A missing file yields an empty catalogue and no error.
// Malformed input is an error and leaves the catalogue unmodified.
//
// Records may appear in any order, so loading is two-pass: basic foods are
// instantiated directly, composite records are stashed by name and then
// resolved recursively. Components naming an unknown food, and components
// that would close a cycle, are dropped with a warning rather than failing
// the load.
func (c *Catalogue) Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		c.foods = make(map[string]*model.Food)
		c.dirty = false
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalogue %s: %w", path, err)
	}

	var records []model.Food
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalogue %s: %w", path, err)
	}

	resolved := make(map[string]*model.Food, len(records))
	pending := make(map[string]model.Food)
	var pendingNames []string
	var warnings []string

	for i := range records {
		rec := records[i]
		switch rec.Kind {
		case model.KindBasic:
			f := rec
			f.Components = nil
			resolved[rec.Name] = &f
		case model.KindComposite:
			pending[rec.Name] = rec
			pendingNames = append(pendingNames, rec.Name)
		default:
			return nil, fmt.Errorf("parse catalogue %s: food %q has unknown type %q", path, rec.Name, rec.Kind)
		}
	}

	building := make(map[string]bool)
	var resolve func(name string) *model.Food
	resolve = func(name string) *model.Food {
		if f, ok := resolved[name]; ok {
			return f
		}
		rec, ok := pending[name]
		if !ok {
			return nil
		}
		if building[name] {
			return nil
		}
		building[name] = true
		defer delete(building, name)

		components := make([]model.Component, 0, len(rec.Components))
		for _, comp := range rec.Components {
			if sub := resolve(comp.Name); sub != nil {
				components = append(components, comp)
				continue
			}
			if building[comp.Name] {
				warnings = append(warnings, fmt.Sprintf("cycle detected: dropped component %q of %q", comp.Name, name))
			} else {
				warnings = append(warnings, fmt.Sprintf("component %q of %q not found, dropped", comp.Name, name))
			}
		}

		f := &model.Food{
			Name:       rec.Name,
			Kind:       model.KindComposite,
			Keywords:   rec.Keywords,
			Components: components,
		}
		resolved[name] = f
		return f
	}

	sort.Strings(pendingNames)
	for _, name := range pendingNames {
		resolve(name)
	}

	c.foods = resolved
	c.dirty = false
	return warnings, nil
}

// Save writes every food as a flat JSON list in lexicographic name order,
// overwriting path entirely. Composite records get their derived calorie
// value filled in as an informational snapshot; components are written by
// name reference only. Clears the dirty flag on success.
func (c *Catalogue) Save(path string) error {
	records := make([]model.Food, 0, len(c.foods))
	for _, name := range c.Names() {
		rec := *c.foods[name]
		if rec.Kind == model.KindComposite {
			rec.Calories, _ = c.Calories(name)
		}
		records = append(records, rec)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalogue: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalogue dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalogue %s: %w", path, err)
	}

	c.dirty = false
	return nil
}
