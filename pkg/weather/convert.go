package weather

import (
	"math"
	"time"

	"cropwise/entities"
	"cropwise/pkg/climate"
)

const MaxForecastDays = 7

// Conditions feeds the advisory: slot 0 stands in for "now", the first
// climate.ForecastWindow slots are the next 24 hours.
func (f *ForecastResponse) Conditions() (climate.Conditions, error) {
	if f == nil || len(f.List) == 0 {
		return climate.Conditions{}, ErrEmptyForecast
	}
	cur := f.List[0]
	c := climate.Conditions{
		Temperature: cur.Main.Temp,
		Humidity:    cur.Main.Humidity,
		WindSpeed:   cur.Wind.Speed,
		Condition:   cur.Condition(),
	}
	for i, it := range f.List {
		if i == climate.ForecastWindow {
			break
		}
		c.Forecast = append(c.Forecast, climate.Slot{Condition: it.Condition(), Rain3h: it.Rain3h()})
	}
	return c, nil
}

type Day struct {
	Date      string `json:"date"`
	Day       string `json:"day"` // "Today" or a short weekday
	Condition string `json:"condition"`
	Temp      int    `json:"temp"`
}

// Daily keeps the first slot of each calendar day in loc, at most
// MaxForecastDays days.
func (f *ForecastResponse) Daily(loc *time.Location, now time.Time) []Day {
	if f == nil {
		return nil
	}
	today := now.In(loc).Format("2006-01-02")
	seen := map[string]bool{}
	var out []Day
	for _, it := range f.List {
		t := time.Unix(it.Dt, 0).In(loc)
		date := t.Format("2006-01-02")
		if seen[date] {
			continue
		}
		seen[date] = true
		name := t.Format("Mon")
		if date == today {
			name = "Today"
		}
		out = append(out, Day{Date: date, Day: name, Condition: it.Condition(), Temp: int(math.Round(it.Main.Temp))})
		if len(out) == MaxForecastDays {
			break
		}
	}
	return out
}

func Snapshot(userKey, location string, cur *CurrentResponse, now time.Time) *entities.WeatherSnapshot {
	return &entities.WeatherSnapshot{
		UserKey:     userKey,
		Temperature: cur.Main.Temp,
		Condition:   cur.Condition(),
		Humidity:    cur.Main.Humidity,
		WindSpeed:   cur.Wind.Speed,
		Location:    location,
		Timestamp:   now,
	}
}
