package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JanieKaren/yeschef-cli/internal/client/models"
	"github.com/JanieKaren/yeschef-cli/internal/client/stores"
)

func parseID(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Println("Usage:", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("%q is not a numeric id\n", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) listIngredients(ctx context.Context, args []string) {
	page := 1
	filters := stores.IngredientFilters{}

	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			page = n
			args = args[1:]
		}
	}
	if len(args) > 0 {
		filters.Search = strings.Join(args, " ")
	}

	if err := a.ingredients.Fetch(ctx, page, filters); err != nil {
		fmt.Println("Could not load the fridge:", err)
		return
	}

	items := a.ingredients.Ingredients()
	if len(items) == 0 {
		fmt.Println("The fridge is empty.")
		return
	}

	for _, item := range items {
		fmt.Printf("%4d  %-24s %-12s %7.1f %-8s expires %s\n",
			item.ID, item.Name, item.Category, item.Quantity, item.Unit, item.ExpirationDate)
	}
	fmt.Printf("Page %d of %d\n", a.ingredients.CurrentPage(), a.ingredients.TotalPages())
}

func (a *App) addIngredient(ctx context.Context) {
	item := models.Ingredient{}

	var err error
	if item.Name, err = GetSimpleText(a.reader, "Name", os.Stdout); err != nil {
		fmt.Println("Error reading input:", err)
		return
	}
	if item.Category, err = GetSimpleText(a.reader, "Category", os.Stdout); err != nil {
		fmt.Println("Error reading input:", err)
		return
	}
	if item.ExpirationDate, err = GetSimpleText(a.reader, "Expiration date (YYYY-MM-DD)", os.Stdout); err != nil {
		fmt.Println("Error reading input:", err)
		return
	}

	quantity, err := GetSimpleText(a.reader, "Quantity", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}
	if item.Quantity, err = strconv.ParseFloat(quantity, 64); err != nil {
		fmt.Printf("%q is not a number\n", quantity)
		return
	}
	if item.Unit, err = GetSimpleText(a.reader, "Unit (g, ml, pcs, ...)", os.Stdout); err != nil {
		fmt.Println("Error reading input:", err)
		return
	}

	if err := a.ingredients.Add(ctx, item); err != nil {
		fmt.Println("Could not add the ingredient:", err)
		return
	}
	fmt.Printf("Added %s to the fridge.\n", item.Name)
}

// updateIngredient prompts for new values; fields left blank keep their
// current value and are not sent at all.
func (a *App) updateIngredient(ctx context.Context, args []string) {
	id, ok := parseID(args, "edititem <id>")
	if !ok {
		return
	}

	patch := map[string]any{}

	name, err := GetSimpleText(a.reader, "New name (blank to keep)", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}
	if name != "" {
		patch["name"] = name
	}

	quantity, err := GetSimpleText(a.reader, "New quantity (blank to keep)", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}
	if quantity != "" {
		q, err := strconv.ParseFloat(quantity, 64)
		if err != nil {
			fmt.Printf("%q is not a number\n", quantity)
			return
		}
		patch["quantity"] = q
	}

	expiration, err := GetSimpleText(a.reader, "New expiration date (blank to keep)", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}
	if expiration != "" {
		patch["expiration_date"] = expiration
	}

	if len(patch) == 0 {
		fmt.Println("Nothing to change.")
		return
	}

	if err := a.ingredients.Update(ctx, id, patch); err != nil {
		fmt.Println("Could not update the ingredient:", err)
		return
	}
	fmt.Println("Ingredient updated.")
}

func (a *App) deleteIngredient(ctx context.Context, args []string) {
	id, ok := parseID(args, "delitem <id>")
	if !ok {
		return
	}

	if err := a.ingredients.Delete(ctx, id); err != nil {
		fmt.Println("Could not delete the ingredient:", err)
		return
	}
	fmt.Println("Ingredient removed.")
}
