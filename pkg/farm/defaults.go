package farm

import (
	"time"

	"cropwise/entities"
)

const dateLayout = "2006-01-02"

func ptr(v float64) *float64 { return &v }

// Default is the starter farm a new user sees: a cabbage plot five weeks in
// and a kale plot three weeks in.
func Default(userKey string, now time.Time) *entities.Farm {
	d := func(days int) string { return now.AddDate(0, 0, days).Format(dateLayout) }
	return &entities.Farm{
		UserKey:                 userKey,
		HealthyPlantsPercentage: ptr(87.5),
		ExpectedYield:           ptr(8.2),
		CropPrices:              map[string]float64{"cabbage": 350, "kale": 120},
		GrowthProgress:          map[string]int{"cabbage": 42, "kale": 25},
		Crops: []entities.Crop{
			{Name: "Cabbage", PlantedDate: d(-35), ExpectedHarvestDate: d(49), Area: "0.4 acres", Health: 85},
			{Name: "Kale", PlantedDate: d(-21), ExpectedHarvestDate: d(63), Area: "0.25 acres", Health: 90},
		},
		LastUpdated: now,
	}
}
