// Package diary keeps the per-date log of consumed servings and the undo
// stack of reversible edits.
package diary

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ktse/diet-diary/internal/catalogue"
	"github.com/ktse/diet-diary/internal/model"
)

var (
	// ErrNothingToUndo is returned by Undo when the stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrInvalidDate is returned for strings that are not calendar-valid
	// YYYY-MM-DD dates.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidServings is returned when servings are not positive.
	ErrInvalidServings = errors.New("servings must be positive")

	// ErrEntryNotFound is returned for an out-of-range entry index.
	ErrEntryNotFound = errors.New("log entry not found")
)

// Recorder receives a durable record of every executed or undone command.
// Recording is best-effort: the diary edit itself never fails because the
// recorder does.
type Recorder interface {
	Record(commandID, op, date, food string, servings, calories float64) error
}

// Diary is the per-date record of consumption events. It prices entries
// through the catalogue handed to New and never does terminal I/O.
type Diary struct {
	catalogue   *catalogue.Catalogue
	logs        map[string][]model.LogEntry
	undoStack   []Command
	currentDate string
	recorder    Recorder
	entropy     *rand.Rand
}

// New returns an empty diary pricing entries against cat, with the
// current date set to today.
func New(cat *catalogue.Catalogue) *Diary {
	return &Diary{
		catalogue:   cat,
		logs:        make(map[string][]model.LogEntry),
		currentDate: Today(),
		entropy:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRecorder installs a durable recorder for executed and undone
// commands. Passing nil disables recording.
func (d *Diary) SetRecorder(r Recorder) {
	d.recorder = r
}

func (d *Diary) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), d.entropy).String()
}

// Catalogue returns the catalogue this diary prices entries against.
func (d *Diary) Catalogue() *catalogue.Catalogue {
	return d.catalogue
}

// CurrentDate returns the diary's current date.
func (d *Diary) CurrentDate() string {
	return d.currentDate
}

// SetCurrentDate changes the diary's current date. The date must be a
// calendar-valid YYYY-MM-DD string.
func (d *Diary) SetCurrentDate(date string) error {
	if !ValidDate(date) {
		return fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, date)
	}
	d.currentDate = date
	return nil
}

// AddFood records servings of a named food on the given date and returns
// the executed command's description. The food must exist in the
// catalogue and servings must be positive. Calories are snapshotted from
// the current food definition.
func (d *Diary) AddFood(date, foodName string, servings float64) (string, error) {
	if !ValidDate(date) {
		return "", fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, date)
	}
	if servings <= 0 {
		return "", fmt.Errorf("%w: %g", ErrInvalidServings, servings)
	}
	if _, ok := d.catalogue.Get(foodName); !ok {
		return "", fmt.Errorf("add %q: %w", foodName, catalogue.ErrNotFound)
	}

	// Calories stay zero if the definition cannot be priced (e.g. a cycle
	// in a hand-edited database); the entry is still recorded.
	perServing, _ := d.catalogue.Calories(foodName)
	cmd := &addEntryCommand{
		diary:    d,
		id:       d.newID(),
		date:     date,
		food:     foodName,
		servings: servings,
		calories: perServing * servings,
	}
	return d.ExecuteCommand(cmd), nil
}

// DeleteFood removes the entry at index (0-based) on the given date and
// returns the executed command's description.
func (d *Diary) DeleteFood(date string, index int) (string, error) {
	entries := d.logs[date]
	if index < 0 || index >= len(entries) {
		return "", fmt.Errorf("delete entry %d on %s: %w", index, date, ErrEntryNotFound)
	}
	cmd := &removeEntryCommand{
		diary:    d,
		id:       d.newID(),
		date:     date,
		index:    index,
		snapshot: entries[index],
	}
	return d.ExecuteCommand(cmd), nil
}

// ExecuteCommand runs cmd, pushes it onto the undo stack and returns its
// description.
func (d *Diary) ExecuteCommand(cmd Command) string {
	cmd.Execute()
	d.undoStack = append(d.undoStack, cmd)
	d.record(cmd, false)
	return cmd.Description()
}

// Undo reverses the most recently executed command and returns its
// description. Each command can be undone once; there is no redo.
func (d *Diary) Undo() (string, error) {
	if len(d.undoStack) == 0 {
		return "", ErrNothingToUndo
	}
	cmd := d.undoStack[len(d.undoStack)-1]
	d.undoStack = d.undoStack[:len(d.undoStack)-1]
	cmd.Undo()
	d.record(cmd, true)
	return cmd.Description(), nil
}

func (d *Diary) record(cmd Command, undone bool) {
	if d.recorder == nil {
		return
	}
	switch c := cmd.(type) {
	case *addEntryCommand:
		op := "add"
		if undone {
			op = "undo-add"
		}
		d.recorder.Record(c.id, op, c.date, c.food, c.servings, c.calories)
	case *removeEntryCommand:
		op := "remove"
		if undone {
			op = "undo-remove"
		}
		d.recorder.Record(c.id, op, c.date, c.snapshot.Food, c.snapshot.Servings, c.snapshot.Calories)
	}
}

// UndoDepth returns the number of commands available to undo.
func (d *Diary) UndoDepth() int {
	return len(d.undoStack)
}

// UndoDescriptions returns the undo stack's command descriptions, latest
// first.
func (d *Diary) UndoDescriptions() []string {
	out := make([]string, 0, len(d.undoStack))
	for i := len(d.undoStack) - 1; i >= 0; i-- {
		out = append(out, d.undoStack[i].Description())
	}
	return out
}

// Entries returns a copy of the log entries for a date, in append order.
func (d *Diary) Entries(date string) []model.LogEntry {
	entries := d.logs[date]
	out := make([]model.LogEntry, len(entries))
	copy(out, entries)
	return out
}

// Dates returns every date with at least one entry, in ascending order.
func (d *Diary) Dates() []string {
	dates := make([]string, 0, len(d.logs))
	for date := range d.logs {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// TotalCalories sums the snapshotted calories of all entries on a date.
func (d *Diary) TotalCalories(date string) float64 {
	var total float64
	for _, entry := range d.logs[date] {
		total += entry.Calories
	}
	return total
}

// setEntries stores a date's entries, removing the date key when the
// sequence is empty so no empty-sequence entries persist.
func (d *Diary) setEntries(date string, entries []model.LogEntry) {
	if len(entries) == 0 {
		delete(d.logs, date)
		return
	}
	d.logs[date] = entries
}
