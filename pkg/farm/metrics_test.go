package farm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/entities"
)

func TestDefault_DatesRelativeToNow(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	f := Default("k", now)

	require.Len(t, f.Crops, 2)
	assert.Equal(t, "2025-05-11", f.Crops[0].PlantedDate)
	assert.Equal(t, "2025-08-03", f.Crops[0].ExpectedHarvestDate)
	assert.Equal(t, "2025-05-25", f.Crops[1].PlantedDate)
	assert.Equal(t, 350.0, f.CropPrices["cabbage"])
}

func TestCompute_DefaultFarm(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	m := Compute(Default("k", now).Crops, now)

	require.NotNil(t, m.HealthyPlantsPercentage)
	assert.InDelta(t, 87.5, *m.HealthyPlantsPercentage, 1e-9)
	assert.InDelta(t, 4.08+1.8, *m.ExpectedYield, 1e-9)
	assert.Equal(t, map[string]int{"cabbage": 42, "kale": 25}, m.GrowthProgress)
	assert.Empty(t, m.Skipped)
}

func TestCompute_SkipsInvalidRangeAndEmpty(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	m := Compute([]entities.Crop{
		{Name: "Kale", PlantedDate: "2025-06-01", ExpectedHarvestDate: "2025-05-01", Area: "1 acre"},
	}, now)
	assert.Equal(t, []string{"Kale"}, m.Skipped)
	assert.Empty(t, m.GrowthProgress)

	m = Compute(nil, now)
	assert.Nil(t, m.HealthyPlantsPercentage)
	assert.Equal(t, 0.0, *m.ExpectedYield)
}
