// Package models defines the records the Yes-Chef API exchanges with the
// client. Identifiers are always assigned by the API, never generated here.
package models

// User is the identity record returned by the auth endpoints. It is replaced
// wholesale whenever the API reports a new identity.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Account holds per-user preferences. Successful preference updates replace
// the whole record with the API's response.
type Account struct {
	ID                 int      `json:"id"`
	UserID             int      `json:"user"`
	DietaryPreferences []string `json:"dietary_preferences"`
	FridgeInventory    []string `json:"fridge_inventory"`
	Allergies          []string `json:"allergies"`
}
