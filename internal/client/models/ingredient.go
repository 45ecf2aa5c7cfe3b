package models

// Ingredient is one item in the user's fridge.
type Ingredient struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	IconName       *string `json:"icon_name"`
	Category       string  `json:"category"`
	ExpirationDate string  `json:"expiration_date"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}
