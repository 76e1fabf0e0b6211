package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add-food [name]",
		Short: "Add a basic food to the catalogue",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAddFood,
	}

	cmd.Flags().Float64P("calories", "c", 0, "Calories per serving (required)")
	cmd.Flags().StringP("keywords", "k", "", "Comma-separated keywords")

	cmd.MarkFlagRequired("calories")

	RootCmd.AddCommand(cmd)
}

func runAddFood(cmd *cobra.Command, args []string) {
	name := strings.Join(args, " ")
	calories, _ := cmd.Flags().GetFloat64("calories")
	keywordsStr, _ := cmd.Flags().GetString("keywords")

	if calories < 0 {
		exitErr("add-food", fmt.Errorf("calories must not be negative"))
	}

	cat := openCatalogue()

	f := &model.Food{
		Name:     name,
		Kind:     model.KindBasic,
		Keywords: splitList(keywordsStr),
		Calories: calories,
	}
	if err := cat.Add(f); err != nil {
		exitErr("add-food", err)
	}
	if err := cat.Save(getDBPath()); err != nil {
		exitErr("save catalogue", err)
	}

	b, _ := json.Marshal(f)
	fmt.Println(string(b))
}
