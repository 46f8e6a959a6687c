package chat

import "strings"

type Responder interface {
	Reply(message string) string
}

type rule struct {
	match func(m string) bool
	text  string
}

func anyOf(words ...string) func(string) bool {
	return func(m string) bool {
		for _, w := range words {
			if strings.Contains(m, w) {
				return true
			}
		}
		return false
	}
}

const DefaultReply = "I'd be happy to help with your farming question. Could you provide more details about the issue you're experiencing with your crops?"

// rules are checked in order; the first match answers.
var rules = []rule{
	{
		func(m string) bool { return strings.Contains(m, "yellow") && strings.Contains(m, "leav") },
		"Yellowing leaves in cabbage can indicate nitrogen deficiency, overwatering, or natural aging. Check soil moisture and consider applying a balanced fertilizer. If only lower leaves are yellow, this is normal aging.",
	},
	{
		anyOf("harvest", "when"),
		"Harvest kale when leaves are 6-8 inches long. For cabbage, harvest when heads are firm and solid. Morning harvest is best for quality and shelf life.",
	},
	{
		anyOf("black rot", "disease"),
		"To prevent black rot: 1) Rotate crops annually 2) Ensure good air circulation 3) Avoid overhead watering 4) Remove infected plant debris 5) Use resistant varieties when possible.",
	},
	{
		anyOf("fertiliz", "nutrient"),
		"For cabbage and kale, use a balanced fertilizer with equal parts NPK. Apply at planting, then side-dress with nitrogen when plants are half-grown. Organic options include compost and well-rotted manure.",
	},
	{
		anyOf("pest", "insect"),
		"Common pests for cabbage and kale include aphids, cabbage worms, and flea beetles. Use row covers to prevent infestation, or apply neem oil or insecticidal soap as needed. Encourage beneficial insects like ladybugs.",
	},
	{
		anyOf("water", "irrigat"),
		"Cabbage and kale need consistent moisture, about 1-1.5 inches per week. Water at the base to keep foliage dry and prevent disease. Mulch helps retain soil moisture and regulate temperature.",
	},
}

type keywordResponder struct{}

func NewKeywordResponder() Responder { return keywordResponder{} }

func (keywordResponder) Reply(message string) string {
	m := strings.ToLower(message)
	for _, r := range rules {
		if r.match(m) {
			return r.text
		}
	}
	return DefaultReply
}
