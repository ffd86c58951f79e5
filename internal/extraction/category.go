package extraction

import "strings"

const OtherCategory = "Other"

type categoryRule struct {
	name     string
	keywords []string
}

// Order matters: ties go to the earlier rule.
var categoryRules = []categoryRule{
	{"Food & Dining", []string{"restaurant", "cafe", "coffee", "starbucks", "mcdonalds", "pizza", "burger", "food", "dining", "kitchen", "bar", "pub", "diner", "grill"}},
	{"Transportation", []string{"uber", "lyft", "taxi", "gas", "fuel", "parking", "metro", "transit", "train", "bus", "airline", "flight"}},
	{"Shopping", []string{"amazon", "walmart", "target", "store", "shop", "retail", "mall", "market"}},
	{"Entertainment", []string{"movie", "cinema", "theater", "netflix", "spotify", "game", "concert", "ticket", "event"}},
	{"Utilities", []string{"electric", "water", "gas", "internet", "phone", "utility", "bill"}},
	{"Healthcare", []string{"hospital", "doctor", "pharmacy", "medical", "health", "clinic", "dental"}},
	{"Travel", []string{"hotel", "airbnb", "booking", "travel", "vacation", "resort", "motel"}},
	{OtherCategory, nil},
}

// CategoryLabels lists every category ClassifyCategory can return.
func CategoryLabels() []string {
	labels := make([]string, len(categoryRules))
	for i, rule := range categoryRules {
		labels[i] = rule.name
	}
	return labels
}

// ClassifyCategory scores each category by how many of its keywords appear in
// the text or vendor and returns the best one.
func ClassifyCategory(text, vendor string) string {
	combined := strings.ToLower(text + " " + vendor)

	best, bestScore := OtherCategory, 0
	for _, rule := range categoryRules {
		score := 0
		for _, keyword := range rule.keywords {
			if strings.Contains(combined, keyword) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = rule.name, score
		}
	}

	return best
}
