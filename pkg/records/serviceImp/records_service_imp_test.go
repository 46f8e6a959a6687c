package serviceImp

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cropwise/database"
	"cropwise/pkg/records"
	"cropwise/pkg/records/repositoryImp"
	svc "cropwise/pkg/records/service"
	"cropwise/pkg/validate"
)

func newSvc(t *testing.T, now time.Time) *service {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	s := New(repositoryImp.NewRecordRepo(db), repositoryImp.NewActivityRepo(db),
		repositoryImp.NewProductionRepo(db), repositoryImp.NewInventoryRepo(db)).(*service)
	s.now = func() time.Time { return now }
	return s
}

func strp(s string) *string { return &s }
func i64(v int64) *int64    { return &v }

func TestRecords_AddListFilterNewestFirst(t *testing.T) {
	s := newSvc(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))
	for _, in := range []svc.NewRecord{
		{Type: "expense", Date: "2025-03-01", Description: "Seed", Amount: 1200, Category: "Seeds"},
		{Type: "sale", Date: "2025-03-15", Description: "Heads", Amount: 5000, Category: "Cabbage"},
		{Type: "expense", Date: "2025-02-10", Description: "Hoe", Amount: 700, Category: "Tools"},
	} {
		_, err := s.AddRecord("u1", in)
		require.NoError(t, err)
	}

	all, err := s.ListRecords("u1", records.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-03-15", all[0].Date)
	assert.Equal(t, "2025-02-10", all[2].Date)

	exp, err := s.ListRecords("u1", records.Filter{Type: "expense", StartDate: "2025-03-01"})
	require.NoError(t, err)
	require.Len(t, exp, 1)
	assert.Equal(t, "Seed", exp[0].Description)

	other, err := s.ListRecords("u2", records.Filter{})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRecords_AddRejectsBadInput(t *testing.T) {
	s := newSvc(t, time.Now())
	_, err := s.AddRecord("u1", svc.NewRecord{Type: "gift", Date: "15/03/2025", Amount: -5})

	var ve *validate.Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"amount", "category", "date", "description", "type"}, ve.Fields)
}

func TestRecords_PatchAndDelete(t *testing.T) {
	s := newSvc(t, time.Now())
	r, err := s.AddRecord("u1", svc.NewRecord{Type: "expense", Date: "2025-03-01", Description: "Seed", Amount: 1200, Category: "Seeds"})
	require.NoError(t, err)

	out, err := s.PatchRecord("u1", r.ID, svc.RecordPatch{Amount: i64(1500), Supplier: strp("Kenya Seed Co")})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), out.Amount)
	assert.Equal(t, "Seed", out.Description)
	assert.Equal(t, "Kenya Seed Co", out.Supplier)

	_, err = s.PatchRecord("u1", r.ID, svc.RecordPatch{Type: strp("loan")})
	assert.Error(t, err)

	_, err = s.PatchRecord("u2", r.ID, svc.RecordPatch{Amount: i64(1)})
	assert.ErrorIs(t, err, svc.ErrNotFound)

	assert.ErrorIs(t, s.DeleteRecord("u2", r.ID), svc.ErrNotFound)
	assert.NoError(t, s.DeleteRecord("u1", r.ID))
}

func TestSummary_CurrentMonth(t *testing.T) {
	s := newSvc(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))
	_, err := s.AddRecord("u1", svc.NewRecord{Type: "expense", Date: "2025-03-01", Description: "Seed", Amount: 1200, Category: "Seeds"})
	require.NoError(t, err)
	_, err = s.AddRecord("u1", svc.NewRecord{Type: "sale", Date: "2025-03-31", Description: "Kale", Amount: 3000, Category: "Kale"})
	require.NoError(t, err)
	_, err = s.AddRecord("u1", svc.NewRecord{Type: "sale", Date: "2025-04-01", Description: "Kale", Amount: 9999, Category: "Kale"})
	require.NoError(t, err)
	_, err = s.AddActivity("u1", svc.NewActivity{Activity: "Planting", Field: "North", Area: 0.5, Date: "2025-03-05", Cost: i64(400)})
	require.NoError(t, err)
	_, err = s.AddInventory("u1", svc.NewInventoryItem{Name: "CAN", Category: "Fertilizer", Quantity: 2, Status: "Low"})
	require.NoError(t, err)

	sum, err := s.Summary("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1800), sum.Financial.NetProfit)
	assert.InDelta(t, 0.5, sum.Area.PlantedArea, 1e-9)
	assert.Equal(t, "Low", sum.Inventory["Fertilizer"])
	assert.Equal(t, "Good", sum.Inventory["Seeds"])

	series, err := s.Series("u1", 2)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2025-02", series[0].Month)
	assert.Equal(t, int64(3000), series[1].TotalSales)
}

func TestInventory_PatchDefaultsAndValue(t *testing.T) {
	s := newSvc(t, time.Now())
	it, err := s.AddInventory("u1", svc.NewInventoryItem{Name: "Kale seed", Category: "Seeds", Quantity: 3, Unit: "kg", UnitCost: 450})
	require.NoError(t, err)
	assert.Equal(t, "Good", it.Status)
	assert.Equal(t, 1350.0, it.TotalValue())

	low := "Low"
	out, err := s.PatchInventory("u1", it.ID, svc.InventoryPatch{Status: &low})
	require.NoError(t, err)
	assert.Equal(t, "Low", out.Status)
	assert.Equal(t, 3.0, out.Quantity)
}

func TestProductionByCropAndExport(t *testing.T) {
	s := newSvc(t, time.Now())
	for _, in := range []svc.NewProduction{
		{Crop: "Kale", HarvestDate: "2025-02-01", Area: 0.5, Yield: 1000, Revenue: 120000, Cost: 20000},
		{Crop: "Kale", HarvestDate: "2025-03-01", Area: 0.5, Yield: 600, Revenue: 72000, Cost: 10000},
	} {
		_, err := s.AddProduction("u1", in)
		require.NoError(t, err)
	}
	by, err := s.ProductionByCrop("u1")
	require.NoError(t, err)
	require.Len(t, by, 1)
	assert.InDelta(t, 1600, by[0].YieldPerHectare, 1e-9)

	var buf bytes.Buffer
	require.NoError(t, s.Export("u1", records.Filter{StartDate: "2025-02-15"}, &buf))
	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows(records.SheetProduction)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
