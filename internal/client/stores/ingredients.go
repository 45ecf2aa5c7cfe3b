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

// IngredientFilters narrows a fridge listing. Zero-value fields are omitted
// from the query.
type IngredientFilters struct {
	Search    string
	Category  string
	Condition string
}

// IngredientStore owns the in-memory fridge collection.
type IngredientStore struct {
	client Client
	log    logging.Logger

	ingredients []models.Ingredient
	page        pageState
}

func NewIngredientStore(client Client, log logging.Logger) *IngredientStore {
	return &IngredientStore{client: client, log: log}
}

func (s *IngredientStore) Ingredients() []models.Ingredient { return s.ingredients }
func (s *IngredientStore) CurrentPage() int                 { return s.page.current }
func (s *IngredientStore) TotalPages() int                  { return s.page.total }
func (s *IngredientStore) NextPage() *int                   { return s.page.next }
func (s *IngredientStore) PreviousPage() *int               { return s.page.previous }

// Fetch replaces the collection with page n of the listing. On failure both
// the collection and the page window keep their previous values.
func (s *IngredientStore) Fetch(ctx context.Context, page int, filters IngredientFilters) error {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.Condition != "" {
		params.Set("condition", filters.Condition)
	}

	var payload listPayload[models.Ingredient]
	if err := s.client.Do(ctx, http.MethodGet, "/ingredients/?"+params.Encode(), nil, &payload); err != nil {
		return fmt.Errorf("fetch ingredients: %w", err)
	}

	s.ingredients = payload.Results
	s.page = payload.pageState()
	return nil
}

// Add creates the ingredient on the API and appends the record it assigned.
func (s *IngredientStore) Add(ctx context.Context, ingredient models.Ingredient) error {
	var created models.Ingredient
	if err := s.client.Do(ctx, http.MethodPost, "/ingredients/", ingredient, &created); err != nil {
		return fmt.Errorf("add ingredient: %w", err)
	}

	s.ingredients = append(s.ingredients, created)
	return nil
}

// Update patches the ingredient and replaces the stored record in place.
func (s *IngredientStore) Update(ctx context.Context, id int, patch map[string]any) error {
	var updated models.Ingredient
	path := fmt.Sprintf("/ingredients/%d/", id)
	if err := s.client.Do(ctx, http.MethodPatch, path, patch, &updated); err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}

	for i := range s.ingredients {
		if s.ingredients[i].ID == id {
			s.ingredients[i] = updated
			break
		}
	}
	return nil
}

// Delete removes the ingredient on the API and locally.
func (s *IngredientStore) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/ingredients/%d/", id)
	if err := s.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}

	s.ingredients = slices.DeleteFunc(s.ingredients, func(i models.Ingredient) bool {
		return i.ID == id
	})
	return nil
}
