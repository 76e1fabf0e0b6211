package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/history"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded diary edits",
		Long:  "Show the durable edit history (adds, removes, undos), newest first. Unlike the in-session undo stack this survives across sessions.",
		Run:   runHistory,
	}

	cmd.Flags().StringP("date", "D", "", "Filter by diary date")
	cmd.Flags().String("op", "", "Filter by operation: add, remove, undo-add, undo-remove")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	date, _ := cmd.Flags().GetString("date")
	op, _ := cmd.Flags().GetString("op")
	limit, _ := cmd.Flags().GetInt("limit")

	hist, err := history.Open(getHistoryPath())
	if err != nil {
		exitErr("open history", err)
	}
	defer hist.Close()

	entries, err := hist.List(history.ListParams{Date: date, Op: op, Limit: limit})
	if err != nil {
		exitErr("history", err)
	}

	if len(entries) == 0 {
		fmt.Println("[]")
		return
	}

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}
