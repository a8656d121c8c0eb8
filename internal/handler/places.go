package handler

import "net/http"

// placeImageResponse is the body of GET /places/image.
type placeImageResponse struct {
	URL string `json:"url"`
}

// handlePlaceImage handles GET /places/image?q=<destination>.
// Resolution never fails: unknown destinations get the default image URL.
func (s *Server) handlePlaceImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, placeImageResponse{URL: s.images.ImageURL(r.Context(), q)})
}

// handlePlaceSearch handles GET /places/search?q=<query>.
// Returns at most four suggestions; backend failures yield an empty list.
func (s *Server) handlePlaceSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, s.search.Search(r.Context(), q))
}
