package stores

import "errors"

var (
	// ErrUnknownRecipe means the recipe id is not in the local collection.
	ErrUnknownRecipe = errors.New("unknown recipe")

	// ErrEmptyCompletion means the generation endpoint answered without any
	// completion choices.
	ErrEmptyCompletion = errors.New("empty completion")
)
