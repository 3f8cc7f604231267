package catalog

// Song is a catalog track as returned by the lookup service.
type Song struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Artist          string  `json:"artist"`
	Album           string  `json:"album"`
	DurationSeconds float64 `json:"duration"`
	AudioURL        string  `json:"audioUrl"`
	ArtworkURL      string  `json:"artworkUrl"`
}

// Pagination describes a page of search results.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// HasMore returns true if further pages exist.
func (p Pagination) HasMore() bool {
	return p.Page < p.Pages
}

// searchResponse is the wire shape of the search endpoint.
type searchResponse struct {
	Songs      []Song     `json:"songs"`
	Pagination Pagination `json:"pagination"`
}

// apiError is the wire shape of an error payload.
type apiError struct {
	Message string `json:"message"`
}
