package domain

// Seed catalog used when no persisted snapshot exists. The functions return
// fresh slices so callers can never mutate the seed itself.

// SeedArtists returns the static fallback artist collection.
func SeedArtists() []Artist {
	return []Artist{
		{
			ID:       "ar-1",
			Name:     "Arctic Monkeys",
			Genre:    []string{"Indie Rock"},
			Country:  "UK",
			ImageURL: "https://images.unsplash.com/photo-1519340241574-2cec6aef0c01?q=80&w=1200&auto=format&fit=crop",
		},
		{
			ID:       "ar-2",
			Name:     "Dua Lipa",
			Genre:    []string{"Pop"},
			Country:  "UK",
			ImageURL: "https://images.unsplash.com/photo-1507878866276-a947ef722fee?q=80&w=1200&auto=format&fit=crop",
		},
		{
			ID:       "ar-3",
			Name:     "The Weeknd",
			Genre:    []string{"R&B", "Pop"},
			Country:  "Canada",
			ImageURL: "https://images.unsplash.com/photo-1483412033650-1015ddeb83d1?q=80&w=1200&auto=format&fit=crop",
		},
	}
}

// SeedEvents returns the static fallback event collection.
func SeedEvents() []Event {
	return []Event{
		{
			ID:        "ev-1",
			Title:     "Arctic Monkeys Live",
			Type:      EventTypeConcert,
			Datetime:  "2025-09-14T20:00:00Z",
			Venue:     Venue{Name: "Štark Arena", City: "Belgrade", Country: "Serbia"},
			ArtistIDs: []string{"ar-1"},
			ImageURL:  "https://images.unsplash.com/photo-1516483638261-f4dbaf036963?q=80&w=1200&auto=format&fit=crop",
		},
		{
			ID:        "ev-2",
			Title:     "Dua Lipa Tour",
			Type:      EventTypeConcert,
			Datetime:  "2025-10-03T19:30:00Z",
			Venue:     Venue{Name: "Arena Zagreb", City: "Zagreb", Country: "Croatia"},
			ArtistIDs: []string{"ar-2"},
			ImageURL:  "https://images.unsplash.com/photo-1511379938547-c1f69419868d?q=80&w=1200&auto=format&fit=crop",
		},
		{
			ID:        "ev-3",
			Title:     "Summer Fest",
			Type:      EventTypeFestival,
			Datetime:  "2025-08-30T18:00:00Z",
			Venue:     Venue{Name: "Petőfi Csarnok", City: "Budapest", Country: "Hungary"},
			ArtistIDs: []string{"ar-1", "ar-2", "ar-3"},
			ImageURL:  "https://images.unsplash.com/photo-1519074002996-a69e7ac46a42?q=80&w=1200&auto=format&fit=crop",
		},
	}
}
