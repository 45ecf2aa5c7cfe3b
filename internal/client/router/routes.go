// Package router classifies application routes and gates navigation on the
// session state.
package router

// Access classifies who may enter a route. Each route carries exactly one
// classification.
type Access int

const (
	// AccessUnrestricted routes are reachable by anyone; no session checks
	// and no lazy initialization happen on the way in.
	AccessUnrestricted Access = iota

	// AccessPublic routes behave like unrestricted ones; the distinction is
	// kept because the route table draws it.
	AccessPublic

	// AccessGuestOnly routes are meant for anonymous sessions (login,
	// register). Whether authenticated users get bounced is guard policy.
	AccessGuestOnly

	// AccessRequiresAuth routes need an authenticated session.
	AccessRequiresAuth
)

type Route struct {
	Name   string
	Path   string
	Access Access
}

// Route names.
const (
	RouteLanding          = "landing"
	RouteHome             = "home"
	RouteLogin            = "login"
	RouteRegister         = "register"
	RouteRecipeGenerator  = "recipe-generator"
	RouteGeneratedRecipes = "generated-recipes"
	RouteIngredients      = "ingredients"
	RouteNewIngredient    = "new-ingredient"
	RouteEditIngredient   = "edit-ingredient"
	RouteProfile          = "profile"
	RouteRecipes          = "recipes"
)

// Routes is the application route table.
var Routes = []Route{
	{Name: RouteLanding, Path: "/", Access: AccessPublic},
	{Name: RouteHome, Path: "/home", Access: AccessRequiresAuth},
	{Name: RouteLogin, Path: "/login", Access: AccessGuestOnly},
	{Name: RouteRegister, Path: "/register", Access: AccessGuestOnly},
	{Name: RouteRecipeGenerator, Path: "/recipe-generator", Access: AccessUnrestricted},
	{Name: RouteGeneratedRecipes, Path: "/generated-recipes", Access: AccessUnrestricted},
	{Name: RouteIngredients, Path: "/fridge", Access: AccessRequiresAuth},
	{Name: RouteNewIngredient, Path: "/fridge/new", Access: AccessRequiresAuth},
	{Name: RouteEditIngredient, Path: "/fridge/edit", Access: AccessRequiresAuth},
	{Name: RouteProfile, Path: "/profile", Access: AccessRequiresAuth},
	{Name: RouteRecipes, Path: "/recipe", Access: AccessRequiresAuth},
}

// Lookup finds a route by name.
func Lookup(name string) (Route, bool) {
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
