package serviceImp

import (
	"errors"
	"io"
	"time"

	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/records"
	repo "cropwise/pkg/records/repository"
	svc "cropwise/pkg/records/service"
	"cropwise/pkg/validate"
)

type service struct {
	recs  repo.RecordRepository
	acts  repo.ActivityRepository
	prods repo.ProductionRepository
	inv   repo.InventoryRepository
	now   func() time.Time
}

func New(recs repo.RecordRepository, acts repo.ActivityRepository, prods repo.ProductionRepository, inv repo.InventoryRepository) svc.RecordsService {
	return &service{recs: recs, acts: acts, prods: prods, inv: inv, now: time.Now}
}

func notFound(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return svc.ErrNotFound
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return svc.ErrNotFound
	}
	return err
}

func (s *service) AddRecord(userKey string, in svc.NewRecord) (*entities.FarmRecord, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	r := &entities.FarmRecord{
		UserKey: userKey, Type: in.Type, Date: in.Date, Description: in.Description,
		Amount: in.Amount, Category: in.Category, Supplier: in.Supplier,
		PaymentMethod: in.PaymentMethod, Customer: in.Customer,
		Quantity: in.Quantity, UnitPrice: in.UnitPrice,
	}
	if err := s.recs.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) PatchRecord(userKey, id string, p svc.RecordPatch) (*entities.FarmRecord, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	cur, err := s.recs.FindByID(userKey, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if p.Type != nil {
		cur.Type = *p.Type
	}
	if p.Date != nil {
		cur.Date = *p.Date
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Amount != nil {
		cur.Amount = *p.Amount
	}
	if p.Category != nil {
		cur.Category = *p.Category
	}
	if p.Supplier != nil {
		cur.Supplier = *p.Supplier
	}
	if p.PaymentMethod != nil {
		cur.PaymentMethod = *p.PaymentMethod
	}
	if p.Customer != nil {
		cur.Customer = *p.Customer
	}
	if p.Quantity != nil {
		cur.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		cur.UnitPrice = *p.UnitPrice
	}
	if err := s.recs.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *service) DeleteRecord(userKey, id string) error {
	return notFound(s.recs.Delete(userKey, id))
}

func (s *service) ListRecords(userKey string, f records.Filter) ([]entities.FarmRecord, error) {
	list, err := s.recs.List(userKey, f.StartDate, f.EndDate)
	if err != nil {
		return nil, err
	}
	return f.Apply(list), nil
}

func (s *service) AddActivity(userKey string, in svc.NewActivity) (*entities.FarmActivity, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	a := &entities.FarmActivity{
		UserKey: userKey, Activity: in.Activity, Field: in.Field, Area: in.Area,
		Date: in.Date, Cost: in.Cost, LaborHours: in.LaborHours, Details: in.Details,
	}
	if err := s.acts.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) DeleteActivity(userKey, id string) error {
	return notFound(s.acts.Delete(userKey, id))
}

func (s *service) ListActivities(userKey, from, to string) ([]entities.FarmActivity, error) {
	return s.acts.List(userKey, from, to)
}

func (s *service) AddProduction(userKey string, in svc.NewProduction) (*entities.FarmProduction, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	p := &entities.FarmProduction{
		UserKey: userKey, Crop: in.Crop, PlantingDate: in.PlantingDate, HarvestDate: in.HarvestDate,
		Area: in.Area, Yield: in.Yield, Revenue: in.Revenue, Cost: in.Cost,
	}
	if err := s.prods.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduction(userKey, id string) error {
	return notFound(s.prods.Delete(userKey, id))
}

func (s *service) ListProduction(userKey string) ([]entities.FarmProduction, error) {
	return s.prods.List(userKey)
}

func (s *service) ProductionByCrop(userKey string) ([]records.CropProduction, error) {
	list, err := s.prods.List(userKey)
	if err != nil {
		return nil, err
	}
	return records.ProductionByCrop(list), nil
}

func (s *service) AddInventory(userKey string, in svc.NewInventoryItem) (*entities.InventoryItem, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = records.StatusGood
	}
	i := &entities.InventoryItem{
		UserKey: userKey, Name: in.Name, Category: in.Category, Quantity: in.Quantity,
		Unit: in.Unit, UnitCost: in.UnitCost, Status: in.Status,
	}
	if err := s.inv.Create(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) PatchInventory(userKey, id string, p svc.InventoryPatch) (*entities.InventoryItem, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	cur, err := s.inv.FindByID(userKey, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if p.Quantity != nil {
		cur.Quantity = *p.Quantity
	}
	if p.UnitCost != nil {
		cur.UnitCost = *p.UnitCost
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	if err := s.inv.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *service) DeleteInventory(userKey, id string) error {
	return notFound(s.inv.Delete(userKey, id))
}

func (s *service) ListInventory(userKey string) ([]entities.InventoryItem, error) {
	return s.inv.List(userKey)
}

func (s *service) Summary(userKey string) (*svc.Summary, error) {
	now := s.now()
	from, to := records.MonthWindow(now)
	recs, err := s.recs.List(userKey, from, to)
	if err != nil {
		return nil, err
	}
	acts, err := s.acts.List(userKey, from, to)
	if err != nil {
		return nil, err
	}
	items, err := s.inv.List(userKey)
	if err != nil {
		return nil, err
	}
	return &svc.Summary{
		Financial: records.Monthly(recs, now),
		Area:      records.Area(acts, now),
		Inventory: records.InventoryStatus(items),
	}, nil
}

func (s *service) Series(userKey string, months int) ([]records.MonthlySummary, error) {
	if months <= 0 {
		months = 6
	}
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	from, _ := records.MonthWindow(first)
	_, to := records.MonthWindow(now)
	recs, err := s.recs.List(userKey, from, to)
	if err != nil {
		return nil, err
	}
	return records.MonthlySeries(recs, now, months), nil
}

func (s *service) Export(userKey string, f records.Filter, w io.Writer) error {
	recs, err := s.ListRecords(userKey, f)
	if err != nil {
		return err
	}
	acts, err := s.acts.List(userKey, f.StartDate, f.EndDate)
	if err != nil {
		return err
	}
	prods, err := s.prods.List(userKey)
	if err != nil {
		return err
	}
	kept := prods[:0]
	for _, p := range prods {
		if (f.StartDate == "" || p.HarvestDate >= f.StartDate) && (f.EndDate == "" || p.HarvestDate <= f.EndDate) {
			kept = append(kept, p)
		}
	}
	return records.WriteWorkbook(w, recs, acts, kept)
}
