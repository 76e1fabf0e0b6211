package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/diary"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log [food name]",
		Short: "Log servings of a food for a date",
		Args:  cobra.MinimumNArgs(1),
		Run:   runLog,
	}

	cmd.Flags().StringP("date", "D", "", "Date YYYY-MM-DD (default: today)")
	cmd.Flags().Float64P("servings", "s", 1, "Number of servings")

	RootCmd.AddCommand(cmd)
}

func runLog(cmd *cobra.Command, args []string) {
	name := strings.Join(args, " ")
	date, _ := cmd.Flags().GetString("date")
	servings, _ := cmd.Flags().GetFloat64("servings")
	if date == "" {
		date = diary.Today()
	}

	cat := openCatalogue()
	d, closeHistory := openDiary(cat)
	defer closeHistory()

	desc, err := d.AddFood(date, name, servings)
	if err != nil {
		exitErr("log", err)
	}
	if err := d.SaveLogs(getLogPath()); err != nil {
		exitErr("save log", err)
	}

	fmt.Printf(`{"ok":true,"executed":%q,"total_calories":%g}`+"\n", desc, d.TotalCalories(date))
}
