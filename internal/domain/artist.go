package domain

import "strings"

// Artist represents a performer in the catalog.
// swagger:model Artist
type Artist struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Genre       []string          `json:"genre,omitempty"`
	Country     string            `json:"country,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	ExternalIDs map[string]string `json:"external_ids,omitempty"`
	Bio         string            `json:"bio,omitempty"`
}

// ArtistMatchesQuery reports whether q is a case-insensitive substring of the
// artist's name, genre tags, or country. An empty query matches every artist.
func ArtistMatchesQuery(a Artist, q string) bool {
	q = strings.TrimSpace(strings.ToLower(q))
	if q == "" {
		return true
	}
	hay := strings.ToLower(a.Name + " " + strings.Join(a.Genre, " ") + " " + a.Country)
	return strings.Contains(hay, q)
}

// AvatarInitials returns an uppercase two-letter label built from the first
// letters of the first two whitespace-separated tokens of the artist name.
// Falls back to "AR" when the name yields no letters.
func AvatarInitials(a Artist) string {
	parts := strings.Fields(a.Name)
	var initials []rune
	for i := 0; i < len(parts) && i < 2; i++ {
		r := []rune(parts[i])
		if len(r) > 0 {
			initials = append(initials, r[0])
		}
	}
	if len(initials) == 0 {
		return "AR"
	}
	return strings.ToUpper(string(initials))
}
