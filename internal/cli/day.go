package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/diary"
	"github.com/ktse/diet-diary/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show the food log for a date",
		Args:  cobra.MaximumNArgs(1),
		Run:   runDay,
	}

	RootCmd.AddCommand(cmd)
}

type dayReport struct {
	Date          string           `json:"date"`
	Entries       []model.LogEntry `json:"entries"`
	TotalCalories float64          `json:"total_calories"`
}

func runDay(cmd *cobra.Command, args []string) {
	date := diary.Today()
	if len(args) > 0 {
		date = args[0]
	}
	if !diary.ValidDate(date) {
		exitErr("day", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date))
	}

	cat := openCatalogue()
	d := diary.New(cat)
	warnings, err := d.LoadLogs(getLogPath())
	if err != nil {
		exitErr("load log", err)
	}
	printWarnings(warnings)

	report := dayReport{
		Date:          date,
		Entries:       d.Entries(date),
		TotalCalories: d.TotalCalories(date),
	}

	b, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(b))
}
