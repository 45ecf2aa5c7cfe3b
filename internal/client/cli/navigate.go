package cli

import (
	"context"
	"fmt"

	"github.com/JanieKaren/yeschef-cli/internal/client/router"
)

// navigate moves the shell to a named screen, letting the guard veto or
// redirect the transition.
func (a *App) navigate(ctx context.Context, name string) {
	target, ok := router.Lookup(name)
	if !ok {
		fmt.Printf("Unknown route %q\n", name)
		return
	}

	switch a.guard.Decide(ctx, target, a.route) {
	case router.Proceed:
		a.route = target
	case router.RedirectLogin:
		a.route, _ = router.Lookup(router.RouteLogin)
		fmt.Println("Please log in first.")
	case router.RedirectHome:
		a.route, _ = router.Lookup(router.RouteHome)
		fmt.Println("You are already signed in.")
	case router.RedirectLanding:
		a.route, _ = router.Lookup(router.RouteLanding)
	}
	fmt.Println("Now at", a.route.Path)
}
