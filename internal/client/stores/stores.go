// Package stores holds the in-memory collections backing the ingredient and
// recipe views. Every mutation is one API call; the local collection changes
// only after the API confirms, except for the favorite toggle, which is
// applied speculatively and rolled back on failure.
package stores

import "context"

// Client is the slice of the API surface the stores need.
type Client interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// pageState is the window the last successful fetch returned. It is replaced
// wholesale per fetch, never merged.
type pageState struct {
	current  int
	total    int
	next     *int
	previous *int
}

// listPayload is the paged shape every listing endpoint returns.
type listPayload[T any] struct {
	Results      []T  `json:"results"`
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"num_pages"`
	NextPage     *int `json:"next_page"`
	PreviousPage *int `json:"previous_page"`
}

func (p listPayload[T]) pageState() pageState {
	return pageState{
		current:  p.CurrentPage,
		total:    p.TotalPages,
		next:     p.NextPage,
		previous: p.PreviousPage,
	}
}

// optimistic is the local-transaction pattern for speculative fields:
// snapshot the prior value, apply the speculative one, issue the request,
// restore the snapshot on failure.
func optimistic[T any](target *T, speculative T, call func() error) error {
	snapshot := *target
	*target = speculative
	if err := call(); err != nil {
		*target = snapshot
		return err
	}
	return nil
}
