package stores

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/JanieKaren/yeschef-cli/internal/client/models"
	"github.com/JanieKaren/yeschef-cli/internal/logging"
)

// RecipeFilters narrows a cookbook listing. Favorite is tri-state: nil means
// "don't filter on it".
type RecipeFilters struct {
	Search   string
	Favorite *bool
}

// RecipeStore owns the in-memory cookbook collection.
type RecipeStore struct {
	client Client
	log    logging.Logger

	recipes []models.Recipe
	page    pageState
}

func NewRecipeStore(client Client, log logging.Logger) *RecipeStore {
	return &RecipeStore{client: client, log: log}
}

func (s *RecipeStore) Recipes() []models.Recipe { return s.recipes }
func (s *RecipeStore) CurrentPage() int         { return s.page.current }
func (s *RecipeStore) TotalPages() int          { return s.page.total }
func (s *RecipeStore) NextPage() *int           { return s.page.next }
func (s *RecipeStore) PreviousPage() *int       { return s.page.previous }

// Fetch replaces the collection with page n of the listing.
func (s *RecipeStore) Fetch(ctx context.Context, page int, filters RecipeFilters) error {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.Favorite != nil {
		params.Set("favorite", strconv.FormatBool(*filters.Favorite))
	}

	var payload listPayload[models.Recipe]
	if err := s.client.Do(ctx, http.MethodGet, "/save-recipe/?"+params.Encode(), nil, &payload); err != nil {
		return fmt.Errorf("fetch recipes: %w", err)
	}

	s.recipes = payload.Results
	s.page = payload.pageState()
	return nil
}

// Save stores the recipe on the API and appends the record it assigned.
func (s *RecipeStore) Save(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	var created models.Recipe
	if err := s.client.Do(ctx, http.MethodPost, "/save-recipe/", recipe, &created); err != nil {
		return models.Recipe{}, fmt.Errorf("save recipe: %w", err)
	}

	s.recipes = append(s.recipes, created)
	return created, nil
}

// Update patches the recipe and replaces the stored record in place.
func (s *RecipeStore) Update(ctx context.Context, id int, patch map[string]any) error {
	var updated models.Recipe
	path := fmt.Sprintf("/recipes-detail/%d/", id)
	if err := s.client.Do(ctx, http.MethodPatch, path, patch, &updated); err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}

	for i := range s.recipes {
		if s.recipes[i].ID == id {
			s.recipes[i] = updated
			break
		}
	}
	return nil
}

// Delete removes the recipe on the API and locally.
func (s *RecipeStore) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/recipes-detail/%d/", id)
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	s.recipes = slices.DeleteFunc(s.recipes, func(r models.Recipe) bool {
		return r.ID == id
	})
	return nil
}

// ToggleFavorite flips the flag before the API confirms and restores the
// prior value if the call fails. The only speculative mutation in the store.
func (s *RecipeStore) ToggleFavorite(ctx context.Context, id int) error {
	idx := slices.IndexFunc(s.recipes, func(r models.Recipe) bool { return r.ID == id })
	if idx == -1 {
		return ErrUnknownRecipe
	}

	flipped := !s.recipes[idx].Favorite
	err := optimistic(&s.recipes[idx].Favorite, flipped, func() error {
		path := fmt.Sprintf("/recipes-detail/%d/", id)
		return s.client.Do(ctx, http.MethodPatch, path, map[string]bool{"favorite": flipped}, nil)
	})
	if err != nil {
		return fmt.Errorf("toggle favorite: %w", err)
	}
	return nil
}
