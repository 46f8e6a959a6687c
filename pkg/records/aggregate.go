package records

import (
	"sort"
	"time"

	"cropwise/entities"
)

// Filter narrows a record list. Empty clauses always pass; dates compare as
// ISO strings, inclusive on both ends.
type Filter struct {
	Type      string `query:"type" json:"type"`
	Category  string `query:"category" json:"category"`
	StartDate string `query:"start_date" json:"start_date"`
	EndDate   string `query:"end_date" json:"end_date"`
}

func (f Filter) Match(r entities.FarmRecord) bool {
	switch {
	case f.Type != "" && r.Type != f.Type:
		return false
	case f.Category != "" && r.Category != f.Category:
		return false
	case f.StartDate != "" && r.Date < f.StartDate:
		return false
	case f.EndDate != "" && r.Date > f.EndDate:
		return false
	}
	return true
}

func (f Filter) Apply(in []entities.FarmRecord) []entities.FarmRecord {
	out := make([]entities.FarmRecord, 0, len(in))
	for _, r := range in {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// MonthWindow is the [YYYY-MM-01, YYYY-MM-31] range for t's month. The upper
// bound is always 31; as a string bound it covers every real day of the month.
func MonthWindow(t time.Time) (string, string) {
	m := t.Format("2006-01")
	return m + "-01", m + "-31"
}

func inWindow(date, from, to string) bool { return date >= from && date <= to }

type MonthlySummary struct {
	Month         string `json:"month"`
	TotalExpenses int64  `json:"total_expenses"`
	TotalSales    int64  `json:"total_sales"`
	NetProfit     int64  `json:"net_profit"`
}

func Monthly(recs []entities.FarmRecord, t time.Time) MonthlySummary {
	from, to := MonthWindow(t)
	s := MonthlySummary{Month: t.Format("2006-01")}
	for _, r := range recs {
		if !inWindow(r.Date, from, to) || r.Amount <= 0 {
			continue
		}
		switch r.Type {
		case entities.RecordExpense:
			s.TotalExpenses += r.Amount
		case entities.RecordSale:
			s.TotalSales += r.Amount
		}
	}
	s.NetProfit = s.TotalSales - s.TotalExpenses
	return s
}

// MonthlySeries returns n monthly summaries ending with t's month, oldest first.
func MonthlySeries(recs []entities.FarmRecord, t time.Time, n int) []MonthlySummary {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	out := make([]MonthlySummary, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, Monthly(recs, first.AddDate(0, -i, 0)))
	}
	return out
}

type AreaSummary struct {
	TotalArea     float64 `json:"total_area"`
	PlantedArea   float64 `json:"planted_area"`
	HarvestedArea float64 `json:"harvested_area"`
}

func Area(acts []entities.FarmActivity, t time.Time) AreaSummary {
	from, to := MonthWindow(t)
	var s AreaSummary
	for _, a := range acts {
		if !inWindow(a.Date, from, to) || a.Area <= 0 {
			continue
		}
		s.TotalArea += a.Area
		switch a.Activity {
		case "Planting":
			s.PlantedArea += a.Area
		case "Harvesting":
			s.HarvestedArea += a.Area
		}
	}
	return s
}

type CropProduction struct {
	Crop            string  `json:"crop"`
	Yield           float64 `json:"yield"`
	Area            float64 `json:"area"`
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	Profit          float64 `json:"profit"`
	YieldPerHectare float64 `json:"yield_per_hectare"`
}

// ProductionByCrop totals production per crop, sorted by crop name.
func ProductionByCrop(prods []entities.FarmProduction) []CropProduction {
	by := map[string]*CropProduction{}
	for _, p := range prods {
		c := by[p.Crop]
		if c == nil {
			c = &CropProduction{Crop: p.Crop}
			by[p.Crop] = c
		}
		c.Yield += p.Yield
		c.Area += p.Area
		c.Revenue += p.Revenue
		c.Cost += p.Cost
	}
	out := make([]CropProduction, 0, len(by))
	for _, c := range by {
		c.Profit = c.Revenue - c.Cost
		if c.Area > 0 {
			c.YieldPerHectare = c.Yield / c.Area
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Crop < out[j].Crop })
	return out
}

const (
	StatusGood = "Good"
	StatusLow  = "Low"
)

var trackedCategories = []string{"Seeds", "Fertilizer", "Pesticides"}

// InventoryStatus flags a tracked category Low when any of its items is Low.
func InventoryStatus(items []entities.InventoryItem) map[string]string {
	out := make(map[string]string, len(trackedCategories))
	for _, c := range trackedCategories {
		out[c] = StatusGood
	}
	for _, it := range items {
		if _, tracked := out[it.Category]; tracked && it.Status == StatusLow {
			out[it.Category] = StatusLow
		}
	}
	return out
}
