package serviceImp

import (
	"strings"
	"time"

	"cropwise/entities"
	"cropwise/pkg/growth"
	repo "cropwise/pkg/growth/repository"
	"cropwise/pkg/growth/service"
	"cropwise/pkg/validate"
)

type growthSvc struct {
	r   repo.GrowthRepository
	now func() time.Time
}

func NewGrowthService(r repo.GrowthRepository) service.GrowthService {
	return &growthSvc{r: r, now: time.Now}
}

func (s *growthSvc) Add(userKey string, in service.NewEntry) (*entities.GrowthEntry, error) {
	in.CropType = strings.ToLower(strings.TrimSpace(in.CropType))
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	planted, _ := time.Parse(growth.DateLayout, in.PlantDate)
	harvest, err := growth.ExpectedHarvest(in.CropType, planted)
	if err != nil {
		return nil, err
	}
	e := &entities.GrowthEntry{
		UserKey:         userKey,
		CropType:        in.CropType,
		GrowthStage:     in.GrowthStage,
		PlantDate:       in.PlantDate,
		ExpectedHarvest: harvest.Format(growth.DateLayout),
		CurrentHeight:   in.CurrentHeight,
		HealthStatus:    in.HealthStatus,
		Notes:           in.Notes,
		CreatedAt:       s.now(),
	}
	if err := s.r.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *growthSvc) List(userKey string) ([]entities.GrowthEntry, error) {
	return s.r.ListByUser(userKey)
}

func (s *growthSvc) Delete(userKey, id string) error {
	ok, err := s.r.Delete(userKey, id)
	if err != nil {
		return err
	}
	if !ok {
		return service.ErrNotFound
	}
	return nil
}

func (s *growthSvc) Summary(userKey string) ([]growth.CropSummary, error) {
	list, err := s.r.ListByUser(userKey)
	if err != nil {
		return nil, err
	}
	return growth.Summarize(list, s.now()), nil
}
