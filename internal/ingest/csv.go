package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gitrdm/covopt/pkg/maxcover"
)

// Catalog is the fully-interned result of loading a recipe CSV: the
// recipes themselves (ready to hand to maxcover.Engine.Search), a
// lookup from each recipe's canonical key back to its display name
// (for rendering the chosen cocktails), and the ingredient interner
// (for rendering the chosen ingredient set).
type Catalog struct {
	Recipes     []maxcover.Recipe
	Names       map[string]string // maxcover.Recipe.Key() -> recipe name
	Ingredients *Interner
}

// LoadCSV reads the flexible, headerless recipe layout from
// SPEC_FULL.md §4.6: field 1 is the recipe name, fields 2..end are
// ingredient names. Column count may vary row to row. Duplicate
// ingredient names within a row are merged (the set, not a multiset,
// is what matters). If two rows produce the exact same ingredient set
// under different names, the later row's name wins — this mirrors the
// original implementation's use of a plain map keyed by ingredient
// set.
//
// No third-party CSV library appears anywhere in the retrieved
// example pack, so the standard library's encoding/csv is used here
// deliberately — see DESIGN.md.
func LoadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // flexible column count, no header

	interner := NewInterner()
	names := make(map[string]string)
	byKey := make(map[string]maxcover.Recipe)
	var order []string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading recipe row: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		recipeName := record[0]
		var r maxcover.Recipe
		for _, ingredientName := range record[1:] {
			if ingredientName == "" {
				continue
			}
			r.Insert(interner.Intern(ingredientName))
		}
		if r.IsEmpty() {
			continue
		}

		key := r.Key()
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = r
		names[key] = recipeName
	}

	recipes := make([]maxcover.Recipe, 0, len(order))
	for _, key := range order {
		recipes = append(recipes, byKey[key])
	}

	return &Catalog{Recipes: recipes, Names: names, Ingredients: interner}, nil
}
