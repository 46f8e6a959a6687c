package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/entities"
)

var recs = []entities.FarmRecord{
	{ID: "1", Type: "expense", Category: "Seeds", Date: "2025-03-01", Amount: 1200},
	{ID: "2", Type: "sale", Category: "Cabbage", Date: "2025-03-15", Amount: 5000},
	{ID: "3", Type: "expense", Category: "Labor", Date: "2025-03-31", Amount: 800},
	{ID: "4", Type: "sale", Category: "Kale", Date: "2025-04-01", Amount: 900},
	{ID: "5", Type: "expense", Category: "Seeds", Date: "2025-02-28", Amount: 300},
}

func ids(rs []entities.FarmRecord) []string {
	out := []string{}
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	assert.Len(t, Filter{}.Apply(recs), len(recs))
	assert.Equal(t, []string{"1", "3", "5"}, ids(Filter{Type: "expense"}.Apply(recs)))
	assert.Equal(t, []string{"1", "5"}, ids(Filter{Category: "Seeds"}.Apply(recs)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter{StartDate: "2025-03-01", EndDate: "2025-03-31"}.Apply(recs)))
	assert.Empty(t, Filter{Type: "sale", Category: "Seeds"}.Apply(recs))
}

func TestMonthWindow(t *testing.T) {
	from, to := MonthWindow(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-02-01", from)
	assert.Equal(t, "2025-02-31", to)
}

func TestMonthly(t *testing.T) {
	s := Monthly(recs, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, MonthlySummary{Month: "2025-03", TotalExpenses: 2000, TotalSales: 5000, NetProfit: 3000}, s)

	empty := Monthly(recs, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Zero(t, empty.NetProfit)
}

func TestMonthly_WorkedExample(t *testing.T) {
	s := Monthly([]entities.FarmRecord{
		{Type: "expense", Amount: 1000, Date: "2024-03-05"},
		{Type: "sale", Amount: 2500, Date: "2024-03-10"},
	}, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, int64(1000), s.TotalExpenses)
	assert.Equal(t, int64(2500), s.TotalSales)
	assert.Equal(t, int64(1500), s.NetProfit)
}

func TestMonthlySeries(t *testing.T) {
	series := MonthlySeries(recs, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), 3)
	require.Len(t, series, 3)
	assert.Equal(t, "2025-02", series[0].Month)
	assert.Equal(t, int64(300), series[0].TotalExpenses)
	assert.Equal(t, int64(3000), series[1].NetProfit)
	assert.Equal(t, int64(900), series[2].TotalSales)
}

func TestArea(t *testing.T) {
	acts := []entities.FarmActivity{
		{Activity: "Planting", Area: 1.5, Date: "2025-03-02"},
		{Activity: "Harvesting", Area: 0.5, Date: "2025-03-20"},
		{Activity: "Watering", Area: 2, Date: "2025-03-21"},
		{Activity: "Planting", Area: 4, Date: "2025-04-01"},
	}
	s := Area(acts, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 4.0, s.TotalArea, 1e-9)
	assert.InDelta(t, 1.5, s.PlantedArea, 1e-9)
	assert.InDelta(t, 0.5, s.HarvestedArea, 1e-9)
}

func TestProductionByCrop(t *testing.T) {
	got := ProductionByCrop([]entities.FarmProduction{
		{Crop: "Kale", Yield: 1000, Area: 0.5, Revenue: 120000, Cost: 20000},
		{Crop: "Cabbage", Yield: 4000, Area: 1, Revenue: 1400000, Cost: 300000},
		{Crop: "Kale", Yield: 500, Area: 0.25, Revenue: 60000, Cost: 10000},
		{Crop: "Onions", Yield: 300},
	})
	require.Len(t, got, 3)
	assert.Equal(t, "Cabbage", got[0].Crop)
	assert.Equal(t, 4000.0, got[0].YieldPerHectare)
	assert.Equal(t, "Kale", got[1].Crop)
	assert.InDelta(t, 2000, got[1].YieldPerHectare, 1e-9)
	assert.InDelta(t, 150000, got[1].Profit, 1e-9)
	assert.Equal(t, 0.0, got[2].YieldPerHectare)
}

func TestInventoryStatus(t *testing.T) {
	got := InventoryStatus([]entities.InventoryItem{
		{Category: "Seeds", Status: "Good"},
		{Category: "Seeds", Status: "Low"},
		{Category: "Pesticides", Status: "Out"},
		{Category: "Tools", Status: "Low"},
	})
	assert.Equal(t, map[string]string{"Seeds": "Low", "Fertilizer": "Good", "Pesticides": "Good"}, got)
}
