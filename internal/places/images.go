// Package places provides the destination image and autocomplete
// collaborators consumed by the UI layer. Both degrade on failure: a missing
// or failing image lookup falls back to a fixed default URL, and a failing
// search yields an empty suggestion list. Neither ever surfaces an error to
// its caller.
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

// DefaultImageURL is returned whenever no curated or remote image is found.
const DefaultImageURL = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800"

// curatedImages maps lowercase city names to hand-picked destination photos.
// Hitting this table avoids a remote call entirely.
var curatedImages = map[string]string{
	"paris":     "https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=800",
	"london":    "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800",
	"rome":      "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800",
	"barcelona": "https://images.unsplash.com/photo-1539037116277-4db20889f2d4?w=800",
	"amsterdam": "https://images.unsplash.com/photo-1459679749680-18eb29c40cd8?w=800",
	"berlin":    "https://images.unsplash.com/photo-1560969184-10fe8719e047?w=800",
	"lisbon":    "https://images.unsplash.com/photo-1555881400-74d7acaacd8b?w=800",
	"tokyo":     "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800",
	"kyoto":     "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800",
	"singapore": "https://images.unsplash.com/photo-1525625293386-3f8f99389edd?w=800",
	"bangkok":   "https://images.unsplash.com/photo-1563492065273-8fbd5bbd5b62?w=800",
	"dubai":     "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800",
	"new york":  "https://images.unsplash.com/photo-1541963463532-d68292c34d19?w=800",
	"toronto":   "https://images.unsplash.com/photo-1517935706615-2717063c2225?w=800",
	"cancun":    "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800",
	"cancún":    "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800",
}

// ImageResolver resolves a destination string to an image URL: curated table
// first, then an optional remote search service, then DefaultImageURL.
type ImageResolver struct {
	client    *http.Client
	searchURL string // base URL of the remote image search; empty disables it
}

// NewImageResolver constructs an ImageResolver.
// searchURL may be empty, in which case only the curated table is consulted.
func NewImageResolver(searchURL string) *ImageResolver {
	return &ImageResolver{
		client:    &http.Client{Timeout: 5 * time.Second},
		searchURL: searchURL,
	}
}

// ImageURL resolves the image for a destination ("City, Region" or a bare
// city name). It never fails: any remote error, non-200 status, malformed
// body, or empty result degrades to DefaultImageURL.
func (r *ImageResolver) ImageURL(ctx context.Context, destination string) string {
	city, _, _ := strings.Cut(destination, ",")
	city = strings.ToLower(strings.TrimSpace(city))
	if city == "" {
		return DefaultImageURL
	}

	if u, ok := curatedImages[city]; ok {
		return u
	}
	if r.searchURL == "" {
		return DefaultImageURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?query=%s", r.searchURL, url.QueryEscape(city)), nil)
	if err != nil {
		return DefaultImageURL
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return DefaultImageURL
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return DefaultImageURL
	}

	var body struct {
		Results []struct {
			URL string `json:"url"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Results) == 0 || body.Results[0].URL == "" {
		return DefaultImageURL
	}
	return body.Results[0].URL
}
