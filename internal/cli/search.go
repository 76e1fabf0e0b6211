package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/catalogue"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [keywords...]",
		Short: "Search foods by keyword",
		Long:  "Case-insensitive substring search over food names and keywords. By default any keyword may match; with --all every keyword must.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().Bool("all", false, "Require every keyword to match")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	matchAll, _ := cmd.Flags().GetBool("all")

	cat := openCatalogue()

	results := cat.SearchByKeywords(args, matchAll)
	if len(results) == 0 {
		fmt.Println("[]")
		return
	}

	rows := make([]catalogue.Summary, 0, len(results))
	for _, f := range results {
		cal, _ := cat.Calories(f.Name)
		rows = append(rows, catalogue.Summary{Name: f.Name, Kind: f.Kind, Calories: cal})
	}

	b, _ := json.MarshalIndent(rows, "", "  ")
	fmt.Println(string(b))
}
