// Package session holds the client's view of who is logged in. A single
// Store is constructed per process and injected into the navigation guard
// and every list store; there is no ambient global state.
//
// Invariant: the session is authenticated only while both the user and the
// account record are present. Every mutation sets or clears the three fields
// together. A failed call never leaves a partially applied session behind.
package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JanieKaren/yeschef-cli/internal/client/models"
	"github.com/JanieKaren/yeschef-cli/internal/logging"
)

// Client is the slice of the API surface the session store needs.
type Client interface {
	Do(ctx context.Context, method, path string, body, out any) error
	FetchCSRFToken(ctx context.Context) error
}

type Store struct {
	client Client
	log    logging.Logger

	user          *models.User
	account       *models.Account
	authenticated bool
	initialized   bool
}

func NewStore(client Client, log logging.Logger) *Store {
	return &Store{client: client, log: log}
}

// authPayload is the {user, account} shape the auth endpoints return.
type authPayload struct {
	User    *models.User    `json:"user"`
	Account *models.Account `json:"account"`
}

func (s *Store) IsAuthenticated() bool { return s.authenticated }
func (s *Store) IsInitialized() bool   { return s.initialized }

// User returns the current identity, or nil when anonymous.
func (s *Store) User() *models.User { return s.user }

// Account returns the current preference record, or nil when anonymous.
func (s *Store) Account() *models.Account { return s.account }

// Initialize primes the anti-forgery token and loads the current identity.
// It runs at most once per store lifetime and never fails the caller: any
// error resolves to an initialized anonymous session.
func (s *Store) Initialize(ctx context.Context) {
	if s.initialized {
		return
	}
	defer func() { s.initialized = true }()

	if err := s.client.FetchCSRFToken(ctx); err != nil {
		s.log.Warn(ctx, "csrf priming failed", "error", err)
		s.clear()
		return
	}
	s.CheckAuth(ctx)
}

// Login authenticates with the API. Errors from the HTTP layer propagate to
// the caller; a response missing either record returns ErrIncompleteResponse
// and leaves the session exactly as it was.
func (s *Store) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}

	var payload authPayload
	if err := s.client.Do(ctx, http.MethodPost, "/auth/login/", body, &payload); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if payload.User == nil || payload.Account == nil {
		return ErrIncompleteResponse
	}

	s.setIdentity(payload.User, payload.Account)
	s.log.Info(ctx, "logged in", "username", payload.User.Username)
	return nil
}

// Register creates an account and, when the API logs the new user in,
// adopts the returned identity. Unlike Login it reports failure as a
// boolean instead of propagating the error.
func (s *Store) Register(ctx context.Context, firstName, lastName, username, email, password string) bool {
	body := map[string]string{
		"firstname": firstName,
		"lastname":  lastName,
		"username":  username,
		"email":     email,
		"password":  password,
	}

	var payload authPayload
	if err := s.client.Do(ctx, http.MethodPost, "/auth/register/", body, &payload); err != nil {
		s.log.Warn(ctx, "registration failed", "error", err)
		return false
	}
	if payload.User == nil || payload.Account == nil {
		return false
	}

	s.setIdentity(payload.User, payload.Account)
	return true
}

// Logout notifies the API and clears the local session either way; logging
// out is user intent, and the next CheckAuth reconciles with the server.
// The notification error is still returned so the caller can report it.
func (s *Store) Logout(ctx context.Context) error {
	err := s.client.Do(ctx, http.MethodPost, "/auth/logout/", nil, nil)
	s.clear()
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CheckAuth refreshes the identity from the API. Failures are absorbed:
// any error, and any response missing either record, resolves the session
// to anonymous rather than surfacing an error.
func (s *Store) CheckAuth(ctx context.Context) {
	var payload authPayload
	if err := s.client.Do(ctx, http.MethodGet, "/auth/user/", nil, &payload); err != nil {
		s.log.Debug(ctx, "auth check failed", "error", err)
		s.clear()
		return
	}
	if payload.User == nil || payload.Account == nil {
		s.clear()
		return
	}
	s.setIdentity(payload.User, payload.Account)
}

// UpdateDietaryPreferences sends the full new preference list and replaces
// the account with the API's response. Returns false, leaving local state
// untouched, when no account is loaded or the call fails.
func (s *Store) UpdateDietaryPreferences(ctx context.Context, preferences []string) bool {
	return s.updateAccount(ctx, "update_dietary_preferences",
		map[string][]string{"dietary_preferences": preferences})
}

// UpdateAllergies follows the same contract as UpdateDietaryPreferences.
func (s *Store) UpdateAllergies(ctx context.Context, allergies []string) bool {
	return s.updateAccount(ctx, "update_allergies",
		map[string][]string{"allergies": allergies})
}

// UpdateFridgeInventory follows the same contract as UpdateDietaryPreferences.
func (s *Store) UpdateFridgeInventory(ctx context.Context, inventory []string) bool {
	return s.updateAccount(ctx, "update_fridge_inventory",
		map[string][]string{"fridge_inventory": inventory})
}

func (s *Store) updateAccount(ctx context.Context, action string, body any) bool {
	if s.account == nil {
		return false
	}

	var account models.Account
	path := fmt.Sprintf("/accounts/%d/%s/", s.account.ID, action)
	if err := s.client.Do(ctx, http.MethodPost, path, body, &account); err != nil {
		s.log.Warn(ctx, "account update failed", "action", action, "error", err)
		return false
	}

	s.account = &account
	return true
}

// UpdateUserInfo replaces the identity record with the API's response.
// Errors propagate; a failed call leaves the user record untouched.
func (s *Store) UpdateUserInfo(ctx context.Context, fields map[string]any) (*models.User, error) {
	if s.user == nil {
		return nil, ErrNoUser
	}

	var user models.User
	path := fmt.Sprintf("/users/%d/", s.user.ID)
	if err := s.client.Do(ctx, http.MethodPut, path, fields, &user); err != nil {
		return nil, fmt.Errorf("update user info: %w", err)
	}

	s.user = &user
	return s.user, nil
}

// setIdentity is the only place the authenticated flag turns on, so it can
// hold the user+account invariant.
func (s *Store) setIdentity(user *models.User, account *models.Account) {
	s.user = user
	s.account = account
	s.authenticated = true
}

func (s *Store) clear() {
	s.user = nil
	s.account = nil
	s.authenticated = false
}
