package places

import "strings"

// classificationRule maps a keyword set found in upstream source tags onto one
// display category. Rules are evaluated in declaration order and the first
// match wins; do not reorder.
type classificationRule struct {
	keywords []string
	category string
}

var classificationRules = []classificationRule{
	{keywords: []string{"temple", "wat", "pagoda"}, category: "temple"},
	{keywords: []string{"shrine", "monastery", "church", "mosque", "place_of_worship"}, category: "spiritual"},
	{keywords: []string{"restaurant", "market", "food", "cafe", "catering"}, category: "food"},
	{keywords: []string{"park", "garden", "waterfall", "mountain", "nature", "lake"}, category: "nature"},
	{keywords: []string{"historic", "heritage", "monument", "culture"}, category: "culture"},
	{keywords: []string{"museum", "gallery"}, category: "museum"},
	{keywords: []string{"trek", "zipline", "adventure", "climbing", "rafting"}, category: "adventure"},
	{keywords: []string{"theatre", "cinema", "nightlife", "entertainment"}, category: "entertainment"},
	{keywords: []string{"mall", "shopping", "bazaar"}, category: "shopping"},
}

const defaultCategory = "attraction"

// categoryVisitMinutes is the estimated visit duration per display category.
var categoryVisitMinutes = map[string]int{
	"temple":        60,
	"spiritual":     45,
	"food":          75,
	"nature":        120,
	"culture":       60,
	"museum":        90,
	"adventure":     180,
	"entertainment": 120,
	"shopping":      90,
	defaultCategory: 60,
}

// classify maps the free-form upstream tag vocabulary onto the closed display
// category set.
func classify(sourceTags []string) string {
	for _, rule := range classificationRules {
		for _, tag := range sourceTags {
			lowerTag := strings.ToLower(tag)

			for _, keyword := range rule.keywords {
				if strings.Contains(lowerTag, keyword) {
					return rule.category
				}
			}
		}
	}

	return defaultCategory
}
