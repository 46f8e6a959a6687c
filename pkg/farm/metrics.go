package farm

import (
	"errors"
	"log"
	"strings"
	"time"

	"cropwise/entities"
	"cropwise/pkg/growth"
)

// Metrics are the derived dashboard fields. Nil pointers mean "not computable".
type Metrics struct {
	HealthyPlantsPercentage *float64       `json:"healthy_plants_percentage"`
	ExpectedYield           *float64       `json:"expected_yield"`
	GrowthProgress          map[string]int `json:"growth_progress"`
	Skipped                 []string       `json:"skipped,omitempty"`
}

// Compute derives the metrics for crops at now. Crops whose dates do not form
// a valid window are left out of GrowthProgress and listed in Skipped.
func Compute(crops []entities.Crop, now time.Time) Metrics {
	m := Metrics{GrowthProgress: map[string]int{}}

	if h, err := growth.HealthyPlantsPercentage(crops); err == nil {
		m.HealthyPlantsPercentage = &h
	} else if !errors.Is(err, growth.ErrNoData) {
		log.Printf("[farm] health: %v", err)
	}
	y := growth.ExpectedYield(crops)
	m.ExpectedYield = &y

	for _, c := range crops {
		p, err := growth.CropProgress(c, now)
		if err != nil {
			m.Skipped = append(m.Skipped, c.Name)
			log.Printf("[farm] skip growth progress: %v", err)
			continue
		}
		m.GrowthProgress[strings.ToLower(c.Name)] = p
	}
	return m
}
