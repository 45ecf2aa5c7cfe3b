package stores

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/JanieKaren/yeschef-cli/internal/client/api"
	"github.com/JanieKaren/yeschef-cli/internal/client/models"
	"github.com/JanieKaren/yeschef-cli/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ingredientFixture(name string) models.Ingredient {
	return models.Ingredient{
		Name:           name,
		Category:       "herb",
		ExpirationDate: "2026-09-10",
		Quantity:       1,
		Unit:           "bunch",
	}
}

// fakeClient implements Client for unit tests. Responses and errors are
// scripted per "METHOD path" key; every call is recorded.
type fakeClient struct {
	responses map[string]string
	errs      map[string]error

	calls    []string
	lastBody any
}

func (f *fakeClient) Do(_ context.Context, method, path string, body, out any) error {
	key := method + " " + path
	f.calls = append(f.calls, key)
	f.lastBody = body
	if err, ok := f.errs[key]; ok {
		return err
	}
	if raw, ok := f.responses[key]; ok && out != nil {
		return json.Unmarshal([]byte(raw), out)
	}
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.Default())
}

const ingredientsPage1 = `{
	"results": [
		{"id":1,"name":"tomato","icon_name":null,"category":"vegetable","expiration_date":"2026-09-01","quantity":3,"unit":"pcs"},
		{"id":2,"name":"milk","icon_name":"milk","category":"dairy","expiration_date":"2026-09-03","quantity":1,"unit":"l"}
	],
	"current_page": 1, "num_pages": 2, "next_page": 2, "previous_page": null
}`

const ingredientsPage2 = `{
	"results": [
		{"id":3,"name":"flour","icon_name":null,"category":"pantry","expiration_date":"2027-01-01","quantity":2,"unit":"kg"}
	],
	"current_page": 2, "num_pages": 2, "next_page": null, "previous_page": 1
}`

func TestIngredientFetch_ReplacesCollectionAndPageWindow(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"GET /ingredients/?page=1": ingredientsPage1,
		"GET /ingredients/?page=2": ingredientsPage2,
	}}
	s := NewIngredientStore(f, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx, 1, IngredientFilters{}))
	require.Len(t, s.Ingredients(), 2)
	assert.Equal(t, 1, s.CurrentPage())
	assert.Equal(t, 2, s.TotalPages())
	require.NotNil(t, s.NextPage())
	assert.Equal(t, 2, *s.NextPage())
	assert.Nil(t, s.PreviousPage())

	// Page 2 replaces, never appends.
	require.NoError(t, s.Fetch(ctx, 2, IngredientFilters{}))
	require.Len(t, s.Ingredients(), 1)
	assert.Equal(t, "flour", s.Ingredients()[0].Name)
	assert.Equal(t, 2, s.CurrentPage())
	assert.Nil(t, s.NextPage())
}

func TestIngredientFetch_EncodesFilters(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"GET /ingredients/?category=dairy&condition=fresh&page=1&search=milk": ingredientsPage1,
	}}
	s := NewIngredientStore(f, testLogger())

	err := s.Fetch(context.Background(), 1, IngredientFilters{
		Search:    "milk",
		Category:  "dairy",
		Condition: "fresh",
	})
	require.NoError(t, err)
	require.Len(t, f.calls, 1)
}

func TestIngredientFetch_FailureLeavesCollectionUntouched(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"GET /ingredients/?page=1": ingredientsPage1,
	}}
	s := NewIngredientStore(f, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Fetch(ctx, 1, IngredientFilters{}))

	f.errs = map[string]error{"GET /ingredients/?page=2": api.ErrUnavailable}
	require.Error(t, s.Fetch(ctx, 2, IngredientFilters{}))

	assert.Len(t, s.Ingredients(), 2)
	assert.Equal(t, 1, s.CurrentPage())
}

func TestIngredientAdd_AppendsServerRecord(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"POST /ingredients/": `{"id":42,"name":"basil","icon_name":null,"category":"herb","expiration_date":"2026-09-10","quantity":1,"unit":"bunch"}`,
	}}
	s := NewIngredientStore(f, testLogger())

	err := s.Add(context.Background(), ingredientFixture("basil"))
	require.NoError(t, err)
	require.Len(t, s.Ingredients(), 1)
	assert.Equal(t, 42, s.Ingredients()[0].ID, "id comes from the API")
}

func TestIngredientAdd_FailureLeavesCollectionUntouched(t *testing.T) {
	f := &fakeClient{errs: map[string]error{
		"POST /ingredients/": &api.StatusError{Code: 400, Body: "bad"},
	}}
	s := NewIngredientStore(f, testLogger())

	require.Error(t, s.Add(context.Background(), ingredientFixture("basil")))
	assert.Empty(t, s.Ingredients())
}

func TestIngredientUpdate_ReplacesInPlace(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"GET /ingredients/?page=1": ingredientsPage1,
		"PATCH /ingredients/2/":    `{"id":2,"name":"milk","icon_name":"milk","category":"dairy","expiration_date":"2026-09-03","quantity":2,"unit":"l"}`,
	}}
	s := NewIngredientStore(f, testLogger())
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx, 1, IngredientFilters{}))

	require.NoError(t, s.Update(ctx, 2, map[string]any{"quantity": 2}))

	require.Len(t, s.Ingredients(), 2)
	assert.Equal(t, float64(2), s.Ingredients()[1].Quantity)
	assert.Equal(t, "tomato", s.Ingredients()[0].Name, "other records untouched")
}

func TestIngredientDelete_RemovesRecord(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"GET /ingredients/?page=1": ingredientsPage1,
	}}
	s := NewIngredientStore(f, testLogger())
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx, 1, IngredientFilters{}))

	require.NoError(t, s.Delete(ctx, 1))

	require.Len(t, s.Ingredients(), 1)
	assert.Equal(t, 2, s.Ingredients()[0].ID)
}

func TestIngredientDelete_FailureLeavesCollectionUntouched(t *testing.T) {
	f := &fakeClient{responses: map[string]string{
		"GET /ingredients/?page=1": ingredientsPage1,
	}}
	s := NewIngredientStore(f, testLogger())
	ctx := context.Background()
	require.NoError(t, s.Fetch(ctx, 1, IngredientFilters{}))

	f.errs = map[string]error{"DELETE /ingredients/1/": api.ErrNotFound}
	require.Error(t, s.Delete(ctx, 1))
	assert.Len(t, s.Ingredients(), 2)
}
