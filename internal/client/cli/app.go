package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/JanieKaren/yeschef-cli/internal/client/api"
	"github.com/JanieKaren/yeschef-cli/internal/client/config"
	"github.com/JanieKaren/yeschef-cli/internal/client/credstore"
	"github.com/JanieKaren/yeschef-cli/internal/client/router"
	"github.com/JanieKaren/yeschef-cli/internal/client/session"
	"github.com/JanieKaren/yeschef-cli/internal/client/stores"
	"github.com/JanieKaren/yeschef-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	session     *session.Store
	guard       *router.Guard
	ingredients *stores.IngredientStore
	recipes     *stores.RecipeStore
	generator   *stores.RecipeGenerator

	reader *bufio.Reader
	route  router.Route
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credstore.InitDatabase(ctx, c.CredentialDB)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}

	app := &App{
		config: c,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}
	app.route, _ = router.Lookup(router.RouteLanding)

	apiClient, err := api.NewClient(c.APIBaseURL, credstore.NewSQLiteStore(db),
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
		api.WithUnauthorizedHook(app.onUnauthorized),
	)
	if err != nil {
		db.Close()
		return nil, err
	}

	app.session = session.NewStore(apiClient, log)
	app.guard = router.NewGuard(app.session, log,
		router.WithRedirectAuthenticated(c.RedirectAuthenticated))
	app.ingredients = stores.NewIngredientStore(apiClient, log)
	app.recipes = stores.NewRecipeStore(apiClient, log)
	app.generator = stores.NewRecipeGenerator(apiClient, log)

	return app, nil
}

// onUnauthorized is the CLI analogue of the web client's hard redirect to
// the login page on a 401.
func (a *App) onUnauthorized() {
	if login, ok := router.Lookup(router.RouteLogin); ok {
		a.route = login
	}
	fmt.Println("Unauthorized, please log in.")
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.session.Initialize(ctx)
	a.Root(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}
