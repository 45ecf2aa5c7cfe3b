package stores

import (
	"context"
	"testing"

	"github.com/JanieKaren/yeschef-cli/internal/client/api"
	"github.com/JanieKaren/yeschef-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipesPage1 = `{
	"results": [
		{"id":1,"title":"Shakshuka","description":"Eggs in tomato sauce",
		 "ingredients":[{"name":"egg","quantity":"4","unit":"pcs"}],
		 "steps":["Simmer sauce","Crack eggs"],"favorite":false},
		{"id":2,"title":"Pancakes","description":"Classic",
		 "ingredients":[{"name":"flour","quantity":"200","unit":"g"}],
		 "steps":["Mix","Fry"],"favorite":true}
	],
	"current_page": 1, "num_pages": 1, "next_page": null, "previous_page": null
}`

func fetchRecipes(t *testing.T, f *fakeClient) *RecipeStore {
	t.Helper()
	if f.responses == nil {
		f.responses = map[string]string{}
	}
	f.responses["GET /save-recipe/?page=1"] = recipesPage1

	s := NewRecipeStore(f, testLogger())
	require.NoError(t, s.Fetch(context.Background(), 1, RecipeFilters{}))
	return s
}

func TestRecipeFetch_ReplacesCollection(t *testing.T) {
	s := fetchRecipes(t, &fakeClient{})

	require.Len(t, s.Recipes(), 2)
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 1, s.TotalPages())
	assert.Nil(t, s.NextPage())
}

func TestRecipeFetch_EncodesFavoriteFilter(t *testing.T) {
	favorite := true
	f := &fakeClient{responses: map[string]string{
		"GET /save-recipe/?favorite=true&page=1&search=eggs": recipesPage1,
	}}
	s := NewRecipeStore(f, testLogger())

	err := s.Fetch(context.Background(), 1, RecipeFilters{Search: "eggs", Favorite: &favorite})
	require.NoError(t, err)
	require.Len(t, f.calls, 1)
}

func TestRecipeSave_AppendsServerRecord(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"POST /save-recipe/": `{"id":7,"title":"Omelette","description":"","ingredients":[],"steps":[],"favorite":false}`,
	}}
	s := NewRecipeStore(f, testLogger())

	created, err := s.Save(context.Background(), models.Recipe{Title: "Omelette"})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID, "id comes from the API")
	require.Len(t, s.Recipes(), 1)
}

func TestRecipeSave_FailureLeavesCollectionUntouched(t *testing.T) {
	f := &fakeClient{errs: map[string]error{
		"POST /save-recipe/": api.ErrUnavailable,
	}}
	s := NewRecipeStore(f, testLogger())

	_, err := s.Save(context.Background(), models.Recipe{Title: "Omelette"})
	require.Error(t, err)
	assert.Empty(t, s.Recipes())
}

func TestRecipeUpdate_ReplacesInPlace(t *testing.T) {
	f := &fakeClient{}
	s := fetchRecipes(t, f)

	f.responses["PATCH /recipes-detail/1/"] = `{"id":1,"title":"Shakshuka deluxe","description":"Eggs in tomato sauce","ingredients":[],"steps":[],"favorite":false}`

	require.NoError(t, s.Update(context.Background(), 1, map[string]any{"title": "Shakshuka deluxe"}))
	assert.Equal(t, "Shakshuka deluxe", s.Recipes()[0].Title)
	assert.Equal(t, "Pancakes", s.Recipes()[1].Title)
}

func TestRecipeDelete_RemovesRecord(t *testing.T) {
	f := &fakeClient{}
	s := fetchRecipes(t, f)

	require.NoError(t, s.Delete(context.Background(), 1))
	require.Len(t, s.Recipes(), 1)
	assert.Equal(t, 2, s.Recipes()[0].ID)
}

func TestToggleFavorite_SuccessKeepsToggledValue(t *testing.T) {
	f := &fakeClient{}
	s := fetchRecipes(t, f)

	require.NoError(t, s.ToggleFavorite(context.Background(), 1))

	assert.True(t, s.Recipes()[0].Favorite)
	assert.Equal(t, map[string]bool{"favorite": true}, f.lastBody)
}

func TestToggleFavorite_FailureRevertsFlag(t *testing.T) {
	f := &fakeClient{}
	s := fetchRecipes(t, f)

	f.errs = map[string]error{"PATCH /recipes-detail/2/": api.ErrUnavailable}

	err := s.ToggleFavorite(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, s.Recipes()[1].Favorite, "flag equals its pre-toggle value")

	// Toggling again after a failure behaves identically.
	err = s.ToggleFavorite(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, s.Recipes()[1].Favorite)
}

func TestToggleFavorite_UnknownRecipe(t *testing.T) {
	s := NewRecipeStore(&fakeClient{}, testLogger())

	err := s.ToggleFavorite(context.Background(), 99)
	require.ErrorIs(t, err, ErrUnknownRecipe)
}

func TestGenerate_ReturnsFirstCompletion(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"POST /recipes/": `{"choices":[{"text":"# Tomato soup\n1. Chop tomatoes"}]}`,
	}}
	g := NewRecipeGenerator(f, testLogger())

	text, err := g.Generate(context.Background(), GenerateRequest{
		Prompt:      "soup from tomatoes",
		Model:       "llama-3.1-8b-instant",
		MaxTokens:   512,
		Temperature: 0.7,
		TopP:        0.9,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "Tomato soup")
}

func TestGenerate_EmptyCompletion(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"POST /recipes/": `{"choices":[]}`,
	}}
	g := NewRecipeGenerator(f, testLogger())

	_, err := g.Generate(context.Background(), GenerateRequest{Prompt: "soup"})
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerate_ErrorPropagates(t *testing.T) {
	f := &fakeClient{errs: map[string]error{
		"POST /recipes/": &api.StatusError{Code: 500, Body: "upstream error"},
	}}
	g := NewRecipeGenerator(f, testLogger())

	_, err := g.Generate(context.Background(), GenerateRequest{Prompt: "soup"})
	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
}
