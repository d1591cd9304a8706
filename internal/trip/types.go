package trip

// Sort criteria accepted by the search endpoint.
const (
	SortFastest  = "fastest"
	SortCheapest = "cheapest"
)

// Listing defaults applied when page/limit are absent or invalid.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Trip is one transportation offer from the provider, or a saved record.
type Trip struct {
	ID          string  `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Cost        float64 `json:"cost"`
	Duration    float64 `json:"duration"`
	Type        string  `json:"type"`
	DisplayName string  `json:"display_name"`
}

// SearchParams are the query parameters of a trip search.
type SearchParams struct {
	Origin      string
	Destination string
	SortBy      string
}

// Pagination describes the page of a listing result. It is derived per
// request from the store's current count, never stored.
type Pagination struct {
	TotalTrips  int `json:"totalTrips"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Limit       int `json:"limit"`
}

// ListResult is a page of saved trips plus its pagination metadata.
type ListResult struct {
	Trips      []Trip
	Pagination Pagination
}
