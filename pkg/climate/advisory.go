package climate

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	TypeOptimal = "optimal"
	TypeWarning = "warning"
	TypeInfo    = "info"
	TypeAction  = "action"

	MaxAdvice = 4
	// three-hour slots in the next 24 hours
	ForecastWindow = 8
)

type Slot struct {
	Condition string  `json:"condition"`
	Rain3h    float64 `json:"rain_3h"`
}

// Conditions is the current reading plus the upcoming forecast slots.
type Conditions struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
	Forecast    []Slot  `json:"forecast"`
}

type Advice struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

func contains(s, sub string) bool { return strings.Contains(strings.ToLower(s), sub) }

func (c Conditions) next24h() []Slot {
	if len(c.Forecast) > ForecastWindow {
		return c.Forecast[:ForecastWindow]
	}
	return c.Forecast
}

// Rain reports any rain or drizzle in the next 24 hours.
func (c Conditions) Rain() bool {
	for _, s := range c.next24h() {
		if contains(s.Condition, "rain") || contains(s.Condition, "drizzle") || s.Rain3h > 0 {
			return true
		}
	}
	return false
}

func (c Conditions) HeavyRain() bool {
	for _, s := range c.next24h() {
		if s.Rain3h > 10 || contains(s.Condition, "heavy") {
			return true
		}
	}
	return false
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Advise runs the rule groups in order. Within a group the first matching
// rule wins; the result is capped at MaxAdvice.
func Advise(c Conditions) []Advice {
	t, hum, wind := c.Temperature, c.Humidity, c.WindSpeed
	rain, heavy := c.Rain(), c.HeavyRain()
	out := make([]Advice, 0, 6)

	switch {
	case t >= 15 && t <= 24:
		out = append(out, Advice{TypeOptimal, "fa-temperature-high", "Optimal Growing Temperature",
			fmt.Sprintf("Current temperature (%.1f°C) is ideal for cabbage and kale growth. Expect excellent photosynthesis and development.", t), "green"})
	case t > 27:
		out = append(out, Advice{TypeWarning, "fa-temperature-high", "High Temperature Alert",
			fmt.Sprintf("Temperature (%.1f°C) is above optimal range. Cabbage may bolt (flower prematurely). Consider shade cloth if possible.", t), "yellow"})
	case t < 10:
		out = append(out, Advice{TypeWarning, "fa-temperature-low", "Low Temperature Alert",
			fmt.Sprintf("Temperature (%.1f°C) is below optimal range. Consider protective covers to prevent cold damage to young plants.", t), "blue"})
	}

	switch {
	case rain:
		out = append(out, Advice{TypeInfo, "fa-tint-slash", "Skip Watering",
			"Rain expected in the next 24 hours. Skip watering to prevent overwatering and root rot in your cabbage and kale.", "blue"})
	case t > 25 && hum < 60:
		out = append(out, Advice{TypeAction, "fa-tint", "Water Early Morning",
			`Hot and dry conditions detected. Water cabbage (1-1.5") and kale (1-2") early morning (6-8 AM) for best absorption.`, "green"})
	}

	if hum > 80 && t > 20 {
		out = append(out, Advice{TypeWarning, "fa-virus", "Disease Risk Alert",
			fmt.Sprintf("High humidity (%s%%) and warm temperatures increase risk of black rot and downy mildew. Ensure good air circulation.", num(hum)), "yellow"})
	}

	switch {
	case wind < 10 && !rain:
		out = append(out, Advice{TypeAction, "fa-spray-can", "Ideal Spraying Conditions",
			"Low wind conditions make this a good time for pest control spraying. Target aphids and cabbage worms with appropriate organic pesticides.", "green"})
	case wind > 20:
		out = append(out, Advice{TypeWarning, "fa-wind", "Avoid Spraying",
			fmt.Sprintf("High wind speed (%.1f km/h) detected. Avoid spraying pesticides due to drift risk and poor coverage.", wind), "yellow"})
	}

	switch {
	case rain && !heavy:
		out = append(out, Advice{TypeAction, "fa-seedling", "Apply Nitrogen Fertilizer",
			"Light rain expected. Apply nitrogen fertilizer (CAN or urea) to your cabbage and kale before rain for optimal nutrient absorption.", "green"})
	case heavy:
		out = append(out, Advice{TypeWarning, "fa-cloud-rain", "Delay Fertilizing",
			"Heavy rain expected. Delay fertilizer application to prevent nutrient washout and leaching.", "yellow"})
	}

	if strings.EqualFold(c.Condition, "clear") && t >= 18 && t <= 24 {
		out = append(out, Advice{TypeAction, "fa-hand-holding", "Good Harvesting Window",
			"Dry weather and moderate temperatures create ideal harvesting conditions. Check cabbage head firmness and harvest mature kale leaves.", "green"})
	}

	if len(out) > MaxAdvice {
		out = out[:MaxAdvice]
	}
	return out
}
