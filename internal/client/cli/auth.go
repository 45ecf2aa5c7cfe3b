package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/JanieKaren/yeschef-cli/internal/client/api"
	"github.com/JanieKaren/yeschef-cli/internal/client/router"
	"github.com/JanieKaren/yeschef-cli/internal/common"
)

func (a *App) login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		fmt.Println("Error reading username:", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error reading password:", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Println("Invalid username or password.")
		} else {
			fmt.Println("Login failed:", err)
		}
		return
	}

	fmt.Printf("Welcome back, %s!\n", a.session.User().FirstName)
	a.navigate(ctx, router.RouteHome)
}

func (a *App) register(ctx context.Context) {
	var answers [4]string
	for i, prompt := range []string{"First name", "Last name", "Username", "Email"} {
		answer, err := GetSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			fmt.Println("Error reading input:", err)
			return
		}
		answers[i] = answer
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println("Error reading password:", err)
		return
	}
	defer common.WipeByteArray(password)

	if !a.session.Register(ctx, answers[0], answers[1], answers[2], answers[3], string(password)) {
		fmt.Println("Registration failed.")
		return
	}

	fmt.Println("Account created, you are signed in.")
	a.navigate(ctx, router.RouteHome)
}

func (a *App) logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Println("Logout request failed:", err)
	}
	fmt.Println("Signed out.")
	a.navigate(ctx, router.RouteLanding)
}

func (a *App) whoami() {
	user := a.session.User()
	if user == nil {
		fmt.Println("Not signed in.")
		return
	}

	fmt.Printf("%s %s (@%s) <%s>\n", user.FirstName, user.LastName, user.Username, user.Email)
	if acc := a.session.Account(); acc != nil {
		fmt.Println("  preferences:", formatList(acc.DietaryPreferences))
		fmt.Println("  allergies:  ", formatList(acc.Allergies))
		fmt.Println("  inventory:  ", formatList(acc.FridgeInventory))
	}
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
