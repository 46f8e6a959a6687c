package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/entities"
)

func day(s string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, s, time.UTC)
	return t
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name string
		now  string
		want float64
	}{
		{"before planting", "2024-12-01", 0},
		{"halfway", "2025-01-11", 50},
		{"after harvest", "2025-06-01", 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Progress(day("2025-01-01"), day("2025-01-21"), day(tc.now))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestProgress_InvalidRange(t *testing.T) {
	_, err := Progress(day("2025-01-21"), day("2025-01-21"), day("2025-01-10"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCropProgress_Rounds(t *testing.T) {
	c := entities.Crop{Name: "Cabbage", PlantedDate: "2025-01-01", ExpectedHarvestDate: "2025-01-04"}
	got, err := CropProgress(c, day("2025-01-02"))
	require.NoError(t, err)
	assert.Equal(t, 33, got)

	c.ExpectedHarvestDate = "2024-12-01"
	_, err = CropProgress(c, day("2025-01-02"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	c.PlantedDate = "soon"
	_, err = CropProgress(c, day("2025-01-02"))
	assert.Error(t, err)
}

func TestHealthyPlantsPercentage(t *testing.T) {
	_, err := HealthyPlantsPercentage(nil)
	assert.ErrorIs(t, err, ErrNoData)

	got, err := HealthyPlantsPercentage([]entities.Crop{{Health: 85}, {Health: 90}, {}})
	require.NoError(t, err)
	assert.InDelta(t, 91.6667, got, 1e-4)
}

func TestParseAcres(t *testing.T) {
	assert.Equal(t, 0.4, ParseAcres("0.4 acres"))
	assert.Equal(t, 2.0, ParseAcres("2acres"))
	assert.Equal(t, 0.5, ParseAcres(".5 acre"))
	assert.Equal(t, 0.0, ParseAcres("about an acre"))
	assert.Equal(t, 0.0, ParseAcres("-3 acres"))
}

func TestExpectedYield_DefaultFarm(t *testing.T) {
	crops := []entities.Crop{
		{Name: "Cabbage", Area: "0.4 acres", Health: 85},
		{Name: "Kale", Area: "0.25 acres", Health: 90},
		{Name: "Sukuma", Area: "1 acre"},
		{Name: "Onions", Area: "unknown"},
	}
	// 12*0.4*0.85 + 8*0.25*0.9 + 8*1*1 + 0
	assert.InDelta(t, 4.08+1.8+8, ExpectedYield(crops), 1e-9)
	assert.Equal(t, 0.0, ExpectedYield(nil))
}

func TestStageProgress(t *testing.T) {
	assert.Equal(t, 10, StageProgress("seedling"))
	assert.Equal(t, 80, StageProgress("Fruiting"))
	assert.Equal(t, 100, StageProgress("harvest"))
	assert.Equal(t, 0, StageProgress("dormant"))
}

func TestExpectedHarvest(t *testing.T) {
	got, err := ExpectedHarvest("Kale", day("2025-03-01"))
	require.NoError(t, err)
	assert.Equal(t, "2025-04-30", got.Format(DateLayout))

	_, err = ExpectedHarvest("maize", day("2025-03-01"))
	assert.ErrorIs(t, err, ErrUnknownCrop)
}

func TestSummarize_LatestEntryPerCrop(t *testing.T) {
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	entries := []entities.GrowthEntry{
		{ID: "a", CropType: "kale", GrowthStage: "seedling", PlantDate: "2025-02-01", ExpectedHarvest: "2025-04-02", CreatedAt: base},
		{ID: "b", CropType: "kale", GrowthStage: "vegetative", PlantDate: "2025-02-01", ExpectedHarvest: "2025-04-02", CurrentHeight: 14, CreatedAt: base.Add(48 * time.Hour)},
		{ID: "c", CropType: "cabbage", GrowthStage: "flowering", PlantDate: "2025-01-01", ExpectedHarvest: "2025-03-12", CreatedAt: base},
	}

	got := Summarize(entries, day("2025-03-11"))
	require.Len(t, got, 2)

	assert.Equal(t, "cabbage", got[0].CropType)
	assert.Equal(t, 60, got[0].StageProgress)
	assert.Equal(t, 69, got[0].DaysSincePlanting)
	assert.Equal(t, 70, got[0].TotalDays)
	assert.Equal(t, 1, got[0].DaysUntilHarvest)

	assert.Equal(t, "b", got[1].EntryID)
	assert.Equal(t, 30, got[1].StageProgress)
	assert.Equal(t, 14.0, got[1].HeightCM)
	assert.Equal(t, 38, got[1].DaysSincePlanting)
}
