package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/yield"
	repo "cropwise/pkg/yield/repository"
	"cropwise/pkg/yield/service"
)

type yieldSvc struct {
	r     repo.YieldRepository
	table *yield.Table
	rnd   yield.Rand
	now   func() time.Time
}

// NewYieldService wires the estimator. A nil rnd draws from math/rand.
func NewYieldService(r repo.YieldRepository, table *yield.Table, rnd yield.Rand) service.YieldService {
	if table == nil {
		table = yield.Default()
	}
	return &yieldSvc{r: r, table: table, rnd: rnd, now: time.Now}
}

func (s *yieldSvc) Predict(userKey string, in yield.Input) (*entities.YieldPrediction, error) {
	res, err := yield.Estimate(s.table, in, s.rnd)
	if err != nil {
		return nil, err
	}
	p := &entities.YieldPrediction{
		UserKey:          userKey,
		CropType:         in.CropType,
		FarmArea:         *in.FarmArea,
		PlantingDensity:  *in.PlantingDensity,
		Variety:          in.Variety,
		Conditions:       in.Conditions,
		SoilType:         in.SoilType,
		Irrigation:       in.Irrigation,
		Fertilizer:       in.Fertilizer,
		PestManagement:   in.PestManagement,
		Season:           in.Season,
		PredictedYield:   res.PredictedYield,
		PredictedRevenue: res.PredictedRevenue,
		ExpectedIncrease: res.ExpectedIncrease,
		AvgHeadWeight:    res.AvgHeadWeight,
		YieldPerHectare:  res.YieldPerHectare,
		TotalPlants:      res.TotalPlants,
		Date:             s.now().Format(time.RFC3339),
	}
	if err := s.r.Create(p); err != nil {
		return nil, fmt.Errorf("save prediction: %w", err)
	}
	log.Printf("[yield] user=%s crop=%s tons=%.1f", userKey, p.CropType, p.PredictedYield)
	return p, nil
}

func (s *yieldSvc) Latest(userKey string) (*entities.YieldPrediction, error) {
	p, err := s.r.Latest(userKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNoPrediction
	}
	return p, err
}

func (s *yieldSvc) History(userKey string, limit int) ([]entities.YieldPrediction, error) {
	return s.r.List(userKey, limit)
}
