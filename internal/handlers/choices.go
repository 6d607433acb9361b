package handlers

import "venue-booking/internal/models"

// stateChoices feeds the state select on the venue and artist forms.
var stateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

func selectedGenres(genres []models.Genre) map[string]bool {
	selected := make(map[string]bool, len(genres))
	for _, g := range genres {
		selected[g.Label] = true
	}
	return selected
}
