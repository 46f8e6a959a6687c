package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func titles(a []Advice) []string {
	out := []string{}
	for _, x := range a {
		out = append(out, x.Title)
	}
	return out
}

func TestAdvise_ClearMildDay(t *testing.T) {
	got := Advise(Conditions{Temperature: 20, Humidity: 55, WindSpeed: 5, Condition: "Clear",
		Forecast: []Slot{{Condition: "Clear"}, {Condition: "Clouds"}}})

	assert.Equal(t, []string{"Optimal Growing Temperature", "Ideal Spraying Conditions", "Good Harvesting Window"}, titles(got))
	assert.Equal(t, "optimal", got[0].Type)
	assert.Contains(t, got[0].Message, "(20.0°C)")
}

func TestAdvise_LightRainCapsAtFour(t *testing.T) {
	got := Advise(Conditions{Temperature: 22, Humidity: 85, WindSpeed: 4, Condition: "Clouds",
		Forecast: []Slot{{Condition: "Clouds"}, {Condition: "Light Rain", Rain3h: 1.2}}})

	assert.Equal(t, []string{"Optimal Growing Temperature", "Skip Watering", "Disease Risk Alert", "Apply Nitrogen Fertilizer"}, titles(got))
	assert.Contains(t, got[2].Message, "High humidity (85%)")
}

func TestAdvise_HeavyRainDelaysFertilizer(t *testing.T) {
	got := Advise(Conditions{Temperature: 12, Humidity: 70, WindSpeed: 25, Condition: "Rain",
		Forecast: []Slot{{Condition: "Rain", Rain3h: 14}}})

	assert.Equal(t, []string{"Skip Watering", "Avoid Spraying", "Delay Fertilizing"}, titles(got))
	assert.Contains(t, got[1].Message, "(25.0 km/h)")
}

func TestAdvise_HotDry(t *testing.T) {
	got := Advise(Conditions{Temperature: 30, Humidity: 40, WindSpeed: 12, Condition: "Clear"})
	assert.Equal(t, []string{"High Temperature Alert", "Water Early Morning"}, titles(got))
}

func TestAdvise_ColdAndGapTemperaturesDoNotMatch(t *testing.T) {
	assert.Equal(t, "Low Temperature Alert", Advise(Conditions{Temperature: 8, WindSpeed: 15})[0].Title)
	assert.Empty(t, Advise(Conditions{Temperature: 26, Humidity: 70, WindSpeed: 15}))
}

func TestRain_OnlyFirstEightSlots(t *testing.T) {
	slots := make([]Slot, 9)
	slots[8] = Slot{Condition: "Heavy Rain", Rain3h: 20}
	c := Conditions{Forecast: slots}
	assert.False(t, c.Rain())
	assert.False(t, c.HeavyRain())

	c.Forecast[3] = Slot{Condition: "Drizzle"}
	assert.True(t, c.Rain())
	assert.False(t, c.HeavyRain())
}
