package usecase

// Raw Ticketmaster Discovery API response shapes. Every nested field may be
// absent; the normalizer applies typed defaults so downstream code only ever
// sees the fully-defaulted domain shape.

type DiscoveryResponse struct {
	Embedded *DiscoveryEmbedded `json:"_embedded"`
	Page     *DiscoveryPage     `json:"page"`
}

type DiscoveryEmbedded struct {
	Events []DiscoveryEvent `json:"events"`
}

type DiscoveryPage struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

type DiscoveryEvent struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Info        string                 `json:"info"`
	PleaseNote  string                 `json:"pleaseNote"`
	Dates       *DiscoveryDates        `json:"dates"`
	Images      []DiscoveryImage       `json:"images"`
	PriceRanges []DiscoveryPriceRange  `json:"priceRanges"`
	Embedded    *DiscoveryEventAssets  `json:"_embedded"`
}

type DiscoveryDates struct {
	Start *DiscoveryDateStart `json:"start"`
}

type DiscoveryDateStart struct {
	DateTime string `json:"dateTime"`
}

type DiscoveryImage struct {
	URL string `json:"url"`
}

type DiscoveryPriceRange struct {
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

type DiscoveryEventAssets struct {
	Venues      []DiscoveryVenue      `json:"venues"`
	Attractions []DiscoveryAttraction `json:"attractions"`
}

type DiscoveryVenue struct {
	Name    string          `json:"name"`
	City    *DiscoveryNamed `json:"city"`
	Country *DiscoveryNamed `json:"country"`
}

type DiscoveryNamed struct {
	Name string `json:"name"`
}

type DiscoveryAttraction struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	Images          []DiscoveryImage          `json:"images"`
	Classifications []DiscoveryClassification `json:"classifications"`
}

type DiscoveryClassification struct {
	Segment *DiscoveryNamed `json:"segment"`
	Genre   *DiscoveryNamed `json:"genre"`
}
