// Package cli implements the diet-diary CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/catalogue"
	"github.com/ktse/diet-diary/internal/diary"
	"github.com/ktse/diet-diary/internal/history"
)

var (
	dbPath      string
	logPath     string
	historyPath string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "diet-diary",
	Short: "Personal food catalogue and calorie diary",
	Long:  "A diet-tracking CLI. Foods (basic and composite) live in a JSON catalogue; daily consumption is logged per date with undoable edits.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Food database path (default: $DIET_DIARY_DB or ~/.diet-diary/food_database.json)")
	RootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Food log path (default: $DIET_DIARY_LOG or ~/.diet-diary/food_log.json)")
	RootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "Edit history path (default: $DIET_DIARY_HISTORY or ~/.diet-diary/history.db)")
}

func getDBPath() string {
	return resolvePath(dbPath, "DIET_DIARY_DB", "food_database.json")
}

func getLogPath() string {
	return resolvePath(logPath, "DIET_DIARY_LOG", "food_log.json")
}

func getHistoryPath() string {
	return resolvePath(historyPath, "DIET_DIARY_HISTORY", "history.db")
}

func resolvePath(flag, env, file string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".diet-diary", file)
}

func openCatalogue() *catalogue.Catalogue {
	cat := catalogue.New()
	warnings, err := cat.Load(getDBPath())
	if err != nil {
		exitErr("load catalogue", err)
	}
	printWarnings(warnings)
	return cat
}

// openDiary loads the log file and wires the edit-history recorder. The
// returned cleanup closes the history store.
func openDiary(cat *catalogue.Catalogue) (*diary.Diary, func()) {
	d := diary.New(cat)
	warnings, err := d.LoadLogs(getLogPath())
	if err != nil {
		exitErr("load log", err)
	}
	printWarnings(warnings)

	hist, err := history.Open(getHistoryPath())
	if err != nil {
		exitErr("open history", err)
	}
	d.SetRecorder(hist)
	return d, func() { hist.Close() }
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// splitList parses a comma-separated flag value, trimming blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
