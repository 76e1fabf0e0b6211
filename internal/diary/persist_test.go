package diary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoadLogsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_log.json")

	d := newTestDiary(t)
	d.AddFood("2024-03-01", "Sandwich", 1)
	d.AddFood("2024-03-01", "Apple", 2)
	d.AddFood("2024-03-02", "Bread", 1.5)

	if err := d.SaveLogs(path); err != nil {
		t.Fatalf("save logs: %v", err)
	}

	d2 := newTestDiary(t)
	warnings, err := d2.LoadLogs(path)
	if err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}

	if got := d2.Dates(); len(got) != 2 || got[0] != "2024-03-01" || got[1] != "2024-03-02" {
		t.Fatalf("unexpected dates %v", got)
	}
	entries := d2.Entries("2024-03-01")
	if len(entries) != 2 || entries[0].Food != "Sandwich" || entries[1].Food != "Apple" {
		t.Errorf("entry order not preserved: %+v", entries)
	}
	if got := d2.TotalCalories("2024-03-01"); !almostEqual(got, 460) {
		t.Errorf("expected total 460, got %g", got)
	}
	if got := d2.TotalCalories("2024-03-02"); !almostEqual(got, 120) {
		t.Errorf("expected total 120, got %g", got)
	}
}

func TestLoadLogsMissingFileStartsEmpty(t *testing.T) {
	d := newTestDiary(t)
	warnings, err := d.LoadLogs(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
	if len(d.Dates()) != 0 {
		t.Errorf("expected empty diary, got %v", d.Dates())
	}
}

func TestLoadLogsSkipsInvalidDateKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_log.json")
	contents := `{
		"2024-03-01": [{"food": "Apple", "servings": 1, "calories": 95}],
		"2024-13-01": [{"food": "Apple", "servings": 1, "calories": 95}],
		"yesterday":  [{"food": "Apple", "servings": 1, "calories": 95}]
	}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	d := newTestDiary(t)
	warnings, err := d.LoadLogs(path)
	if err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, "invalid date") {
			t.Errorf("unexpected warning %q", w)
		}
	}
	if got := d.Dates(); len(got) != 1 || got[0] != "2024-03-01" {
		t.Errorf("expected only the valid date, got %v", got)
	}
}

func TestLoadLogsDropsEmptyDateSequences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_log.json")
	contents := `{"2024-03-01": []}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	d := newTestDiary(t)
	if _, err := d.LoadLogs(path); err != nil {
		t.Fatalf("load logs: %v", err)
	}
	if len(d.Dates()) != 0 {
		t.Errorf("expected empty date keys dropped, got %v", d.Dates())
	}
}

func TestLoadLogsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_log.json")
	if err := os.WriteFile(path, []byte(`[1, 2, 3]`), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	d := newTestDiary(t)
	d.AddFood("2024-03-01", "Apple", 1)

	if _, err := d.LoadLogs(path); err == nil {
		t.Fatal("expected error for malformed log")
	}
	if len(d.Entries("2024-03-01")) != 1 {
		t.Error("diary should be unmodified after failed load")
	}
}
