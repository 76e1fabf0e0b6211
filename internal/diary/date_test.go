package diary

import "testing"

func TestValidDate(t *testing.T) {
	valid := []string{
		"2024-01-01",
		"2024-02-29", // leap year
		"2000-02-29", // divisible by 400
		"2023-12-31",
		"1999-06-15",
	}
	for _, s := range valid {
		if !ValidDate(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{
		"",
		"2023-02-29", // not a leap year
		"1900-02-29", // divisible by 100 but not 400
		"2024-13-01",
		"2024-00-10",
		"2024-04-31",
		"2024-01-00",
		"2024-1-1",
		"24-01-01",
		"2024/01/01",
		"2024-01-01x",
		"yesterday",
	}
	for _, s := range invalid {
		if ValidDate(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestToday(t *testing.T) {
	if !ValidDate(Today()) {
		t.Errorf("Today() = %q is not a valid date", Today())
	}
}
