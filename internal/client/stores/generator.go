package stores

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JanieKaren/yeschef-cli/internal/logging"
)

// GenerateRequest carries the recipe-generation parameters the API forwards
// to its language model.
type GenerateRequest struct {
	Prompt      string  `json:"prompt"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// RecipeGenerator asks the API to draft recipe text. Generated text is not
// part of any collection until the user saves it through the RecipeStore.
type RecipeGenerator struct {
	client Client
	log    logging.Logger
}

func NewRecipeGenerator(client Client, log logging.Logger) *RecipeGenerator {
	return &RecipeGenerator{client: client, log: log}
}

// Generate returns the first completion for the prompt.
func (g *RecipeGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	var payload struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	}

	if err := g.client.Do(ctx, http.MethodPost, "/recipes/", req, &payload); err != nil {
		return "", fmt.Errorf("generate recipes: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return payload.Choices[0].Text, nil
}
