package serviceImp

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/farm"
	repo "cropwise/pkg/farm/repository"
	"cropwise/pkg/farm/service"
)

type farmSvc struct {
	r   repo.FarmRepository
	now func() time.Time
}

func NewFarmService(r repo.FarmRepository) service.FarmService {
	return &farmSvc{r: r, now: time.Now}
}

func (s *farmSvc) Get(userKey string) (*entities.Farm, error) {
	f, err := s.r.Find(userKey)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	f = farm.Default(userKey, s.now())
	if err := s.r.Create(f); err != nil {
		return nil, err
	}
	log.Printf("[farm] seeded default farm for %s", userKey)
	return f, nil
}

func (s *farmSvc) SetCrops(userKey string, crops []entities.Crop) (*entities.Farm, error) {
	f, err := s.Get(userKey)
	if err != nil {
		return nil, err
	}
	f.Crops = crops
	f.LastUpdated = s.now()
	if err := s.r.UpdateFields(f, "Crops", "LastUpdated"); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *farmSvc) SetPrices(userKey string, prices map[string]float64) (*entities.Farm, error) {
	f, err := s.Get(userKey)
	if err != nil {
		return nil, err
	}
	if f.CropPrices == nil {
		f.CropPrices = map[string]float64{}
	}
	for k, v := range prices {
		if v >= 0 {
			f.CropPrices[k] = v
		}
	}
	f.LastUpdated = s.now()
	if err := s.r.UpdateFields(f, "CropPrices", "LastUpdated"); err != nil {
		return nil, err
	}
	return f, nil
}

// Recalculate derives the metrics from the stored crops and merges them back;
// other fields of the farm are left as stored.
func (s *farmSvc) Recalculate(userKey string) (*entities.Farm, farm.Metrics, error) {
	f, err := s.Get(userKey)
	if err != nil {
		return nil, farm.Metrics{}, err
	}
	now := s.now()
	m := farm.Compute(f.Crops, now)

	fields := []string{"ExpectedYield", "GrowthProgress", "LastUpdated"}
	if m.HealthyPlantsPercentage != nil {
		f.HealthyPlantsPercentage = m.HealthyPlantsPercentage
		fields = append(fields, "HealthyPlantsPercentage")
	}
	f.ExpectedYield = m.ExpectedYield
	if f.GrowthProgress == nil {
		f.GrowthProgress = map[string]int{}
	}
	for k, v := range m.GrowthProgress {
		f.GrowthProgress[k] = v
	}
	f.LastUpdated = now
	if err := s.r.UpdateFields(f, fields...); err != nil {
		return nil, m, err
	}
	return f, m, nil
}
