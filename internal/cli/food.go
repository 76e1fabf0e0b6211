package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/catalogue"
)

func init() {
	cmd := &cobra.Command{
		Use:   "food [name]",
		Short: "Show one food's full record",
		Args:  cobra.MinimumNArgs(1),
		Run:   runFood,
	}

	RootCmd.AddCommand(cmd)
}

func runFood(cmd *cobra.Command, args []string) {
	name := strings.Join(args, " ")

	cat := openCatalogue()

	f, ok := cat.Get(name)
	if !ok {
		exitErr("food", fmt.Errorf("%q: %w", name, catalogue.ErrNotFound))
	}

	out := *f
	out.Calories, _ = cat.Calories(name)
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
