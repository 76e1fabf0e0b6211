// Package model defines the core food and diary data types.
package model

// Kind discriminates the two food variants.
type Kind string

const (
	KindBasic     Kind = "basic"
	KindComposite Kind = "composite"
)

// ValidKinds are the allowed food kinds.
var ValidKinds = map[Kind]bool{
	KindBasic:     true,
	KindComposite: true,
}

// Component is one ingredient of a composite food. It references the
// component food by name; the catalogue owns the actual Food.
type Component struct {
	Name     string  `json:"name"`
	Servings float64 `json:"servings"`
}

// Food is a catalogue entry. Basic foods carry an authoritative Calories
// value; composite foods carry Components and their Calories field is a
// derived snapshot written at save time, never read back.
type Food struct {
	Name       string      `json:"name"`
	Kind       Kind        `json:"type"`
	Keywords   []string    `json:"keywords"`
	Calories   float64     `json:"calories"`
	Components []Component `json:"components,omitempty"`
}

// LogEntry is one recorded consumption event. Calories are snapshotted
// when the entry is created and are not recomputed if the food definition
// changes later.
type LogEntry struct {
	Food     string  `json:"food"`
	Servings float64 `json:"servings"`
	Calories float64 `json:"calories"`
}
