package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktse/diet-diary/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add-recipe [name]",
		Short: "Add a composite food built from existing foods",
		Long:  "Add a composite food. Each --component references an existing catalogue food by name with a serving count, e.g. --component \"Bread:2\".",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAddRecipe,
	}

	cmd.Flags().StringArrayP("component", "i", nil, "Component as name:servings (repeatable, at least one required)")
	cmd.Flags().StringP("keywords", "k", "", "Comma-separated keywords")

	cmd.MarkFlagRequired("component")

	RootCmd.AddCommand(cmd)
}

func runAddRecipe(cmd *cobra.Command, args []string) {
	name := strings.Join(args, " ")
	rawComponents, _ := cmd.Flags().GetStringArray("component")
	keywordsStr, _ := cmd.Flags().GetString("keywords")

	cat := openCatalogue()

	components := make([]model.Component, 0, len(rawComponents))
	for _, raw := range rawComponents {
		comp, err := parseComponent(raw)
		if err != nil {
			exitErr("add-recipe", err)
		}
		if _, ok := cat.Get(comp.Name); !ok {
			exitErr("add-recipe", fmt.Errorf("component %q not in catalogue", comp.Name))
		}
		components = append(components, comp)
	}

	f := &model.Food{
		Name:       name,
		Kind:       model.KindComposite,
		Keywords:   splitList(keywordsStr),
		Components: components,
	}
	if err := cat.Add(f); err != nil {
		exitErr("add-recipe", err)
	}
	if err := cat.Save(getDBPath()); err != nil {
		exitErr("save catalogue", err)
	}

	out := *f
	out.Calories, _ = cat.Calories(name)
	b, _ := json.Marshal(out)
	fmt.Println(string(b))
}

// parseComponent parses "name:servings". Food names may contain colons, so
// the servings are taken after the last one.
func parseComponent(raw string) (model.Component, error) {
	i := strings.LastIndex(raw, ":")
	if i < 0 {
		return model.Component{}, fmt.Errorf("component %q: want name:servings", raw)
	}
	name := strings.TrimSpace(raw[:i])
	servings, err := strconv.ParseFloat(strings.TrimSpace(raw[i+1:]), 64)
	if err != nil {
		return model.Component{}, fmt.Errorf("component %q: bad servings: %w", raw, err)
	}
	if name == "" {
		return model.Component{}, fmt.Errorf("component %q: empty name", raw)
	}
	if servings <= 0 {
		return model.Component{}, fmt.Errorf("component %q: servings must be positive", raw)
	}
	return model.Component{Name: name, Servings: servings}, nil
}
