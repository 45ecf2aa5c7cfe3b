package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) updatePreferences(ctx context.Context) {
	items, err := GetList(a.reader, "Dietary preferences", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}

	if !a.session.UpdateDietaryPreferences(ctx, items) {
		fmt.Println("Could not update dietary preferences.")
		return
	}
	fmt.Println("Dietary preferences updated.")
}

func (a *App) updateAllergies(ctx context.Context) {
	items, err := GetList(a.reader, "Allergies", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}

	if !a.session.UpdateAllergies(ctx, items) {
		fmt.Println("Could not update allergies.")
		return
	}
	fmt.Println("Allergies updated.")
}

func (a *App) updateInventory(ctx context.Context) {
	items, err := GetList(a.reader, "Fridge inventory", os.Stdout)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return
	}

	if !a.session.UpdateFridgeInventory(ctx, items) {
		fmt.Println("Could not update the fridge inventory.")
		return
	}
	fmt.Println("Fridge inventory updated.")
}

// updateProfile edits the user record itself; blank answers leave the field
// out of the request.
func (a *App) updateProfile(ctx context.Context) {
	fields := map[string]any{}

	for _, q := range []struct{ key, prompt string }{
		{"first_name", "First name (blank to keep)"},
		{"last_name", "Last name (blank to keep)"},
		{"email", "Email (blank to keep)"},
	} {
		answer, err := GetSimpleText(a.reader, q.prompt, os.Stdout)
		if err != nil {
			fmt.Println("Error reading input:", err)
			return
		}
		if answer != "" {
			fields[q.key] = answer
		}
	}

	if len(fields) == 0 {
		fmt.Println("Nothing to change.")
		return
	}

	user, err := a.session.UpdateUserInfo(ctx, fields)
	if err != nil {
		fmt.Println("Could not update the profile:", err)
		return
	}
	fmt.Printf("Profile updated: %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
}
