package diary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktse/diet-diary/internal/model"
)

// LoadLogs reads the per-date log file. A missing file yields an empty
// diary and no error; malformed input is an error and leaves the diary
// unmodified. Date keys that are not calendar-valid are skipped with a
// warning. Loading does not touch the undo stack.
func (d *Diary) LoadLogs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		d.logs = make(map[string][]model.LogEntry)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read log %s: %w", path, err)
	}

	var raw map[string][]model.LogEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse log %s: %w", path, err)
	}

	logs := make(map[string][]model.LogEntry, len(raw))
	var warnings []string
	for date, entries := range raw {
		if !ValidDate(date) {
			warnings = append(warnings, fmt.Sprintf("invalid date key %q, skipped", date))
			continue
		}
		if len(entries) == 0 {
			continue
		}
		logs[date] = entries
	}

	d.logs = logs
	return warnings, nil
}

// SaveLogs writes the per-date log file as a mapping from date to entry
// list, overwriting path entirely.
func (d *Diary) SaveLogs(path string) error {
	data, err := json.MarshalIndent(d.logs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode log: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write log %s: %w", path, err)
	}
	return nil
}
