package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/diary"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log-rm [entry number]",
		Short: "Delete a log entry for a date",
		Long:  "Delete a log entry by its number as shown by the day command (first entry is 1).",
		Args:  cobra.ExactArgs(1),
		Run:   runLogRm,
	}

	cmd.Flags().StringP("date", "D", "", "Date YYYY-MM-DD (default: today)")

	RootCmd.AddCommand(cmd)
}

func runLogRm(cmd *cobra.Command, args []string) {
	date, _ := cmd.Flags().GetString("date")
	if date == "" {
		date = diary.Today()
	}

	number, err := strconv.Atoi(args[0])
	if err != nil || number < 1 {
		exitErr("log-rm", fmt.Errorf("entry number must be a positive integer"))
	}

	cat := openCatalogue()
	d, closeHistory := openDiary(cat)
	defer closeHistory()

	desc, err := d.DeleteFood(date, number-1)
	if err != nil {
		exitErr("log-rm", err)
	}
	if err := d.SaveLogs(getLogPath()); err != nil {
		exitErr("save log", err)
	}

	fmt.Printf(`{"ok":true,"executed":%q}`+"\n", desc)
}
