package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List all foods in the catalogue",
		Run:   runFoods,
	}

	cmd.Flags().Bool("names-only", false, "Only output food names")

	RootCmd.AddCommand(cmd)
}

func runFoods(cmd *cobra.Command, args []string) {
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	cat := openCatalogue()

	if namesOnly {
		for _, name := range cat.Names() {
			fmt.Println(name)
		}
		return
	}

	b, _ := json.MarshalIndent(cat.ListAll(), "", "  ")
	fmt.Println(string(b))
}
