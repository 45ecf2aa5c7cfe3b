package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JanieKaren/yeschef-cli/internal/client/models"
	"github.com/JanieKaren/yeschef-cli/internal/client/stores"
)

// Generation defaults, matching what the web client sends.
const (
	generatorModel       = "gpt-3.5-turbo-instruct"
	generatorMaxTokens   = 1024
	generatorTemperature = 0.7
	generatorTopP        = 0.9
)

func (a *App) listRecipes(ctx context.Context, args []string) {
	page := 1
	filters := stores.RecipeFilters{}

	for _, arg := range args {
		switch {
		case arg == "fav" || arg == "favorites":
			fav := true
			filters.Favorite = &fav
		default:
			if n, err := strconv.Atoi(arg); err == nil {
				page = n
			} else {
				filters.Search = arg
			}
		}
	}

	if err := a.recipes.Fetch(ctx, page, filters); err != nil {
		fmt.Println("Could not load recipes:", err)
		return
	}

	recipes := a.recipes.Recipes()
	if len(recipes) == 0 {
		fmt.Println("No recipes saved yet.")
		return
	}

	for _, r := range recipes {
		marker := " "
		if r.Favorite {
			marker = "*"
		}
		fmt.Printf("%4d %s %-32s %d ingredients, %d steps\n",
			r.ID, marker, r.Title, len(r.Ingredients), len(r.Steps))
	}
	fmt.Printf("Page %d of %d\n", a.recipes.CurrentPage(), a.recipes.TotalPages())
}

func (a *App) saveRecipe(ctx context.Context) {
	recipe := models.Recipe{}

	var err error
	if recipe.Title, err = GetSimpleText(a.reader, "Title", os.Stdout); err != nil {
		fmt.Println("Error reading input:", err)
		return
	}
	if recipe.Description, err = GetSimpleText(a.reader, "Description", os.Stdout); err != nil {
		fmt.Println("Error reading input:", err)
		return
	}

	// Ingredient lines look like "flour, 200, g"; unit is optional.
	lines, err := GetLines(a.reader, "Ingredients, one per line as name, quantity[, unit]", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}
	for _, line := range lines {
		parts := strings.SplitN(line, ",", 3)
		ri := models.RecipeIngredient{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			ri.Quantity = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			ri.Unit = strings.TrimSpace(parts[2])
		}
		recipe.Ingredients = append(recipe.Ingredients, ri)
	}

	if recipe.Steps, err = GetLines(a.reader, "Steps, one per line", os.Stdout); err != nil {
		fmt.Println("Error reading input:", err)
		return
	}

	saved, err := a.recipes.Save(ctx, recipe)
	if err != nil {
		fmt.Println("Could not save the recipe:", err)
		return
	}
	fmt.Printf("Saved %q as recipe %d.\n", saved.Title, saved.ID)
}

func (a *App) deleteRecipe(ctx context.Context, args []string) {
	id, ok := parseID(args, "delrecipe <id>")
	if !ok {
		return
	}

	if err := a.recipes.Delete(ctx, id); err != nil {
		fmt.Println("Could not delete the recipe:", err)
		return
	}
	fmt.Println("Recipe deleted.")
}

func (a *App) toggleFavorite(ctx context.Context, args []string) {
	id, ok := parseID(args, "favorite <id>")
	if !ok {
		return
	}

	if err := a.recipes.ToggleFavorite(ctx, id); err != nil {
		if errors.Is(err, stores.ErrUnknownRecipe) {
			fmt.Printf("Recipe %d is not in the current list, run \"recipes\" first.\n", id)
		} else {
			fmt.Println("Could not toggle the favorite flag:", err)
		}
		return
	}
	fmt.Println("Favorite flag toggled.")
}

func (a *App) generateRecipe(ctx context.Context) {
	prompt, err := GetSimpleText(a.reader, "What would you like to cook?", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}

	fmt.Println("Generating...")
	text, err := a.generator.Generate(ctx, stores.GenerateRequest{
		Prompt:      prompt,
		Model:       generatorModel,
		MaxTokens:   generatorMaxTokens,
		Temperature: generatorTemperature,
		TopP:        generatorTopP,
	})
	if err != nil {
		if errors.Is(err, stores.ErrEmptyCompletion) {
			fmt.Println("The generator returned nothing, try rephrasing the prompt.")
		} else {
			fmt.Println("Generation failed:", err)
		}
		return
	}

	fmt.Println()
	fmt.Println(text)
}
