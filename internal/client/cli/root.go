package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

const helpText = `Commands:
  open <route>          navigate to a screen (landing, home, login, register,
                        recipe-generator, ingredients, profile, recipes)
  login                 sign in
  register              create an account
  logout                sign out
  whoami                show the current user and account
  fridge [page] [text]  list fridge ingredients, optionally filtered by text
  additem               add an ingredient to the fridge
  edititem <id>         update an ingredient
  delitem <id>          remove an ingredient
  recipes [page]        list saved recipes ("recipes fav" shows favorites)
  saverecipe            save a recipe
  delrecipe <id>        delete a saved recipe
  favorite <id>         toggle a recipe's favorite flag
  generate              generate a recipe from a prompt
  prefs                 set dietary preferences
  allergies             set allergies
  inventory             set the fridge inventory summary
  profile               update name and email
  help                  show this help
  exit                  quit`

// Root runs the command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Println(`Welcome to Yes, Chef! Type "help" for the command list.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s%s> ", a.statusPrefix(), a.route.Path)
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		switch cmd {
		case "help":
			fmt.Println(helpText)
		case "open":
			if len(args) == 0 {
				fmt.Println("Usage: open <route>")
				continue
			}
			a.navigate(ctx, args[0])
		case "login":
			a.login(ctx)
		case "register":
			a.register(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()
		case "fridge":
			a.listIngredients(ctx, args)
		case "additem":
			a.addIngredient(ctx)
		case "edititem":
			a.updateIngredient(ctx, args)
		case "delitem":
			a.deleteIngredient(ctx, args)
		case "recipes":
			a.listRecipes(ctx, args)
		case "saverecipe":
			a.saveRecipe(ctx)
		case "delrecipe":
			a.deleteRecipe(ctx, args)
		case "favorite":
			a.toggleFavorite(ctx, args)
		case "generate":
			a.generateRecipe(ctx)
		case "prefs":
			a.updatePreferences(ctx)
		case "allergies":
			a.updateAllergies(ctx)
		case "inventory":
			a.updateInventory(ctx)
		case "profile":
			a.updateProfile(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command %q, type \"help\" for the list.\n", cmd)
		}
	}
}

func (a *App) statusPrefix() string {
	if u := a.session.User(); u != nil {
		return u.Username + " "
	}
	return "guest "
}
