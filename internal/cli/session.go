package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/diary"
)

func init() {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive diary session",
		Long:  "Edit the diary interactively. Edits within a session can be undone one at a time; the log file is written on save/quit.",
		Run:   runSession,
	}

	RootCmd.AddCommand(cmd)
}

const sessionHelp = `commands:
  add <servings> <food name>   log a food on the current date
  show [date]                  show the log for a date (default: current)
  rm <n>                       delete entry n of the current date
  undo                         undo the last edit
  stack                        show pending undos, latest first
  date <YYYY-MM-DD>            change the current date
  search [--all] <keywords>    search foods
  foods                        list all foods
  save                         write the log file
  quit                         save and exit`

func runSession(cmd *cobra.Command, args []string) {
	cat := openCatalogue()
	d, closeHistory := openDiary(cat)
	defer closeHistory()

	fmt.Printf("diet-diary session, %d foods loaded. Type 'help' for commands.\n", cat.Len())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("(%s)> ", d.CurrentDate())
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if !dispatchSession(d, fields) {
			break
		}
	}

	if err := d.SaveLogs(getLogPath()); err != nil {
		exitErr("save log", err)
	}
	fmt.Println("log saved, bye")
}

// dispatchSession handles one session command, returning false to exit.
func dispatchSession(d *diary.Diary, fields []string) bool {
	switch fields[0] {
	case "help":
		fmt.Println(sessionHelp)

	case "add":
		if len(fields) < 3 {
			fmt.Println("usage: add <servings> <food name>")
			return true
		}
		servings, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			fmt.Printf("bad servings %q\n", fields[1])
			return true
		}
		name := strings.Join(fields[2:], " ")
		desc, err := d.AddFood(d.CurrentDate(), name, servings)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return true
		}
		fmt.Printf("executed: %s\n", desc)

	case "show":
		date := d.CurrentDate()
		if len(fields) > 1 {
			date = fields[1]
		}
		showDay(d, date)

	case "rm":
		if len(fields) != 2 {
			fmt.Println("usage: rm <entry number>")
			return true
		}
		number, err := strconv.Atoi(fields[1])
		if err != nil || number < 1 {
			fmt.Println("entry number must be a positive integer")
			return true
		}
		desc, err := d.DeleteFood(d.CurrentDate(), number-1)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return true
		}
		fmt.Printf("executed: %s\n", desc)

	case "undo":
		desc, err := d.Undo()
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return true
		}
		fmt.Printf("undone: %s\n", desc)

	case "stack":
		descs := d.UndoDescriptions()
		if len(descs) == 0 {
			fmt.Println("undo stack is empty")
			return true
		}
		for i, desc := range descs {
			fmt.Printf("%d. %s\n", i+1, desc)
		}

	case "date":
		if len(fields) != 2 {
			fmt.Println("usage: date <YYYY-MM-DD>")
			return true
		}
		if err := d.SetCurrentDate(fields[1]); err != nil {
			fmt.Printf("error: %v\n", err)
			return true
		}
		fmt.Printf("current date set to %s\n", d.CurrentDate())

	case "search":
		keywords := fields[1:]
		matchAll := false
		if len(keywords) > 0 && keywords[0] == "--all" {
			matchAll = true
			keywords = keywords[1:]
		}
		if len(keywords) == 0 {
			fmt.Println("usage: search [--all] <keywords>")
			return true
		}
		results := d.Catalogue().SearchByKeywords(keywords, matchAll)
		if len(results) == 0 {
			fmt.Println("no foods match")
			return true
		}
		for i, f := range results {
			cal, _ := d.Catalogue().Calories(f.Name)
			fmt.Printf("%d. %s (%s) - %g calories\n", i+1, f.Name, f.Kind, cal)
		}

	case "foods":
		for i, row := range d.Catalogue().ListAll() {
			fmt.Printf("%d. %s (%s) - %g calories\n", i+1, row.Name, row.Kind, row.Calories)
		}

	case "save":
		if err := d.SaveLogs(getLogPath()); err != nil {
			fmt.Printf("error: save log: %v\n", err)
			return true
		}
		fmt.Println("log saved")

	case "quit", "exit":
		return false

	default:
		fmt.Printf("unknown command %q, type 'help'\n", fields[0])
	}
	return true
}

func showDay(d *diary.Diary, date string) {
	entries := d.Entries(date)
	if len(entries) == 0 {
		fmt.Printf("no entries for %s\n", date)
		return
	}
	fmt.Printf("%-5s %-30s %10s %12s\n", "no.", "food", "servings", "calories")
	for i, entry := range entries {
		fmt.Printf("%-5d %-30s %10g %12g\n", i+1, entry.Food, entry.Servings, entry.Calories)
	}
	fmt.Printf("total: %g calories\n", d.TotalCalories(date))
}
