package domain

// TypeFilterAll disables event type filtering.
const TypeFilterAll = "all"

// Filters is the active event filter selection held by the state store.
// Zero values mean "no constraint" except TypeFilter, whose neutral value
// is TypeFilterAll.
type Filters struct {
	Search       string `json:"search"`
	TypeFilter   string `json:"type_filter"`
	ArtistFilter string `json:"artist_filter"`
}

// DefaultFilters returns the filter selection used before any user input.
func DefaultFilters() Filters {
	return Filters{Search: "", TypeFilter: TypeFilterAll, ArtistFilter: ""}
}

// FilterPatch is a partial filter update. Nil fields are left untouched by
// SetFilters; non-nil fields overwrite the current value.
type FilterPatch struct {
	Search       *string `json:"search,omitempty"`
	TypeFilter   *string `json:"type_filter,omitempty"`
	ArtistFilter *string `json:"artist_filter,omitempty"`
}

// Apply shallow-merges the patch into f and returns the result.
func (p FilterPatch) Apply(f Filters) Filters {
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.TypeFilter != nil {
		f.TypeFilter = *p.TypeFilter
	}
	if p.ArtistFilter != nil {
		f.ArtistFilter = *p.ArtistFilter
	}
	return f
}

// ArtistQuery is the independent filter selection for artist listings.
type ArtistQuery struct {
	Search  string
	Genre   string
	Country string
}
