package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxSuggestions caps the autocomplete result list.
const maxSuggestions = 4

// Suggestion is one destination autocomplete result.
type Suggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// Searcher queries a remote place-autocomplete service.
// A failing or unconfigured backend degrades to an empty suggestion list;
// Search never returns an error.
type Searcher struct {
	client    *http.Client
	searchURL string // base URL of the autocomplete service; empty disables it
}

// NewSearcher constructs a Searcher. searchURL may be empty, in which case
// every query yields an empty list.
func NewSearcher(searchURL string) *Searcher {
	return &Searcher{
		client:    &http.Client{Timeout: 5 * time.Second},
		searchURL: searchURL,
	}
}

// Search returns up to maxSuggestions place suggestions for the query.
// Blank queries and all failure modes yield an empty (non-nil) list.
func (s *Searcher) Search(ctx context.Context, query string) []Suggestion {
	none := []Suggestion{}

	query = strings.TrimSpace(query)
	if query == "" || s.searchURL == "" {
		return none
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?input=%s", s.searchURL, url.QueryEscape(query)), nil)
	if err != nil {
		return none
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return none
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return none
	}

	var body struct {
		Predictions []Suggestion `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return none
	}

	if len(body.Predictions) > maxSuggestions {
		body.Predictions = body.Predictions[:maxSuggestions]
	}
	if body.Predictions == nil {
		return none
	}
	return body.Predictions
}
