// Package report renders a search Result for the host boundary's three
// output formats (table/JSON/plain), per spec.md §6.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/gitrdm/covopt/internal/ingest"
	"github.com/gitrdm/covopt/pkg/maxcover"
)

// document is the shared, format-agnostic view of a search outcome
// that each renderer below serializes differently.
type document struct {
	Ingredients     []string `json:"ingredients"`
	IngredientCount int      `json:"ingredient_count"`
	Recipes         []string `json:"recipes"`
	RecipeCount     int      `json:"recipe_count"`
	Calls           int      `json:"calls"`
	BudgetExhausted bool     `json:"budget_exhausted"`
}

func buildDocument(incumbent []maxcover.Recipe, names *ingest.Interner, recipeNames map[string]string, counter int, budgetExhausted bool) document {
	footprint := maxcover.Empty()
	for _, r := range incumbent {
		footprint.UnionAssign(r)
	}

	ingredientNames := make([]string, 0, footprint.Size())
	it := footprint.Iterator()
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		ingredientNames = append(ingredientNames, names.Name(id))
	}
	sort.Strings(ingredientNames)

	recipeDisplay := make([]string, 0, len(incumbent))
	for _, r := range incumbent {
		name, ok := recipeNames[r.Key()]
		if !ok {
			name = fmt.Sprintf("<unnamed:%s>", r.String())
		}
		recipeDisplay = append(recipeDisplay, name)
	}
	sort.Strings(recipeDisplay)

	return document{
		Ingredients:     ingredientNames,
		IngredientCount: len(ingredientNames),
		Recipes:         recipeDisplay,
		RecipeCount:     len(recipeDisplay),
		Calls:           counter,
		BudgetExhausted: budgetExhausted,
	}
}

// Render writes the incumbent and its search diagnostics in the
// requested format (table, json, or simple) to w. format must already have passed config.ValidateFormat.
func Render(format string, incumbent []maxcover.Recipe, names *ingest.Interner, recipeNames map[string]string, counter int, budgetExhausted bool, w io.Writer) error {
	doc := buildDocument(incumbent, names, recipeNames, counter, budgetExhausted)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "simple":
		for _, name := range doc.Recipes {
			fmt.Fprintln(w, name)
		}
		return nil
	case "table":
		return renderTable(doc, w)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

func renderTable(doc document, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Ingredients (%d):\t%s\n", doc.IngredientCount, joinOrDash(doc.Ingredients))
	fmt.Fprintf(tw, "Recipes (%d):\t%s\n", doc.RecipeCount, joinOrDash(doc.Recipes))
	fmt.Fprintf(tw, "Search calls:\t%d\n", doc.Calls)
	fmt.Fprintf(tw, "Budget exhausted:\t%t\n", doc.BudgetExhausted)

	return tw.Flush()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	out := items[0]
	for _, s := range items[1:] {
		out += ", " + s
	}
	return out
}
