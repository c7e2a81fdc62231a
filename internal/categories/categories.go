// Package categories labels expenses by matching keywords in their
// descriptions. The tables are static, so callers get stable results for
// stable inputs.
package categories

import (
	"strings"

	"github.com/ejifeanyi/obito/internal/models"
)

type category struct {
	name     string
	emoji    string
	keywords []string
}

const defaultEmoji = "💰"

// Categories apply in order and the first keyword hit wins, so "dinner at
// the airport hotel" stays Dining rather than Travel.
var table = []category{
	{"Housing", "🏠", []string{"rent", "lease", "mortgage"}},
	{"Groceries", "🛒", []string{"grocer", "supermarket", "market"}},
	{"Dining", "🍽️", []string{"restaurant", "dinner", "lunch", "takeout", "pizza", "coffee"}},
	{"Utilities", "💡", []string{"electric", "energy", "water", "internet", "wifi", "phone"}},
	{"Transport", "🚕", []string{"uber", "lyft", "taxi", "fuel", "parking", "transit"}},
	{"Entertainment", "🎬", []string{"netflix", "spotify", "cinema", "movie", "concert"}},
	{"Health", "💊", []string{"gym", "fitness", "pharmacy", "doctor"}},
	{"Travel", "✈️", []string{"flight", "hotel", "airbnb"}},
}

// Categorize picks a category for a description, or DefaultCategory when no
// keyword matches.
func Categorize(description string) string {
	lowered := strings.ToLower(description)
	for _, c := range table {
		for _, k := range c.keywords {
			if strings.Contains(lowered, k) {
				return c.name
			}
		}
	}
	return models.DefaultCategory
}

// Emoji returns the display emoji for a category, falling back to the
// default for unknown labels.
func Emoji(category string) string {
	for _, c := range table {
		if c.name == category {
			return c.emoji
		}
	}
	return defaultEmoji
}
