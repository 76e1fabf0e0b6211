package diary

import (
	"fmt"
	"math"

	"github.com/ktse/diet-diary/internal/model"
)

// servingsTolerance is the absolute tolerance for matching servings when
// undoing an add.
const servingsTolerance = 0.001

// Command is a reversible diary mutation. A command is pushed onto the
// undo stack only after Execute succeeds; Undo runs at most once because
// undoing pops the command off the stack.
type Command interface {
	Execute()
	Undo()
	Description() string
}

// addEntryCommand appends a log entry. Calories are snapshotted at
// construction time from the catalogue.
type addEntryCommand struct {
	diary    *Diary
	id       string
	date     string
	food     string
	servings float64
	calories float64
}

func (cmd *addEntryCommand) Execute() {
	cmd.diary.logs[cmd.date] = append(cmd.diary.logs[cmd.date], model.LogEntry{
		Food:     cmd.food,
		Servings: cmd.servings,
		Calories: cmd.calories,
	})
}

func (cmd *addEntryCommand) Undo() {
	entries := cmd.diary.logs[cmd.date]
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Food == cmd.food && math.Abs(entries[i].Servings-cmd.servings) < servingsTolerance {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	cmd.diary.setEntries(cmd.date, entries)
}

func (cmd *addEntryCommand) Description() string {
	return fmt.Sprintf("add %g serving(s) of %s (%g calories) on %s",
		cmd.servings, cmd.food, cmd.calories, cmd.date)
}

// removeEntryCommand removes the entry at a given index. The entry is
// snapshotted at construction so Undo can reinsert it at its original
// position, keeping later index-based operations meaningful.
type removeEntryCommand struct {
	diary    *Diary
	id       string
	date     string
	index    int
	snapshot model.LogEntry
}

func (cmd *removeEntryCommand) Execute() {
	entries := cmd.diary.logs[cmd.date]
	if cmd.index < 0 || cmd.index >= len(entries) {
		return
	}
	entries = append(entries[:cmd.index], entries[cmd.index+1:]...)
	cmd.diary.setEntries(cmd.date, entries)
}

func (cmd *removeEntryCommand) Undo() {
	entries := cmd.diary.logs[cmd.date]
	i := cmd.index
	if i > len(entries) {
		i = len(entries)
	}
	entries = append(entries, model.LogEntry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = cmd.snapshot
	cmd.diary.logs[cmd.date] = entries
}

func (cmd *removeEntryCommand) Description() string {
	return fmt.Sprintf("remove %g serving(s) of %s from %s",
		cmd.snapshot.Servings, cmd.snapshot.Food, cmd.date)
}
