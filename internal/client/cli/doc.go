// Package cli implements the interactive Yes-Chef shell.
//
// The App wires the session store, the navigation guard and the list stores
// over one shared API client, then drives them from a read–eval–print loop.
// Screens mirror the web application's routes; moving between them goes
// through the navigation guard, so the same redirect rules apply.
package cli
