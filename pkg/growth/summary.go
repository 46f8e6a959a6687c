package growth

import (
	"math"
	"sort"
	"time"

	"cropwise/entities"
)

// CropSummary describes one crop type from its most recent growth entry.
type CropSummary struct {
	CropType          string  `json:"crop_type"`
	Stage             string  `json:"stage"`
	StageProgress     int     `json:"stage_progress"`
	DaysSincePlanting int     `json:"days_since_planting"`
	TotalDays         int     `json:"total_days"`
	DaysUntilHarvest  int     `json:"days_until_harvest"`
	HeightCM          float64 `json:"height_cm"`
	HealthStatus      string  `json:"health_status"`
	EntryID           string  `json:"entry_id"`
}

func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// Summarize groups entries by crop type and reports on the latest entry of
// each, sorted by crop type.
func Summarize(entries []entities.GrowthEntry, now time.Time) []CropSummary {
	latest := map[string]entities.GrowthEntry{}
	for _, e := range entries {
		cur, ok := latest[e.CropType]
		if !ok || e.CreatedAt.After(cur.CreatedAt) {
			latest[e.CropType] = e
		}
	}

	out := make([]CropSummary, 0, len(latest))
	for crop, e := range latest {
		s := CropSummary{
			CropType:      crop,
			Stage:         e.GrowthStage,
			StageProgress: StageProgress(e.GrowthStage),
			HeightCM:      e.CurrentHeight,
			HealthStatus:  e.HealthStatus,
			EntryID:       e.ID,
		}
		planted, perr := time.ParseInLocation(DateLayout, e.PlantDate, now.Location())
		harvest, herr := time.ParseInLocation(DateLayout, e.ExpectedHarvest, now.Location())
		if perr == nil {
			s.DaysSincePlanting = daysBetween(planted, now)
		}
		if herr == nil {
			s.DaysUntilHarvest = daysBetween(now, harvest)
		}
		if perr == nil && herr == nil {
			s.TotalDays = daysBetween(planted, harvest)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CropType < out[j].CropType })
	return out
}
