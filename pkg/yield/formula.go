package yield

import (
	"math"
	"math/rand"

	"cropwise/pkg/validate"
)

// Factor names as they appear in requests and in override tables.
const (
	FactorVariety    = "variety"
	FactorConditions = "conditions"
	FactorSoil       = "soil_type"
	FactorIrrigation = "irrigation"
	FactorFertilizer = "fertilizer"
	FactorPest       = "pest_management"
	FactorSeason     = "season"
)

var factorOrder = []string{
	FactorVariety, FactorConditions, FactorSoil, FactorIrrigation,
	FactorFertilizer, FactorPest, FactorSeason,
}

// Input is one estimate request. Numeric fields are pointers so a missing
// value is distinguishable from zero.
type Input struct {
	CropType        string   `json:"crop_type" validate:"required"`
	FarmArea        *float64 `json:"farm_area" validate:"required,gt=0"`
	PlantingDensity *float64 `json:"planting_density" validate:"required,gt=0"`
	Variety         string   `json:"variety" validate:"required"`
	Conditions      string   `json:"conditions" validate:"required"`
	SoilType        string   `json:"soil_type" validate:"required"`
	Irrigation      string   `json:"irrigation" validate:"required"`
	Fertilizer      string   `json:"fertilizer" validate:"required"`
	PestManagement  string   `json:"pest_management" validate:"required"`
	Season          string   `json:"season" validate:"required"`
}

func (in Input) factor(name string) string {
	switch name {
	case FactorVariety:
		return in.Variety
	case FactorConditions:
		return in.Conditions
	case FactorSoil:
		return in.SoilType
	case FactorIrrigation:
		return in.Irrigation
	case FactorFertilizer:
		return in.Fertilizer
	case FactorPest:
		return in.PestManagement
	case FactorSeason:
		return in.Season
	}
	return ""
}

type Result struct {
	PredictedYield   float64 `json:"predicted_yield"` // tons, 1 dp
	PredictedRevenue int64   `json:"predicted_revenue"`
	ExpectedIncrease int     `json:"expected_increase"`
	AvgHeadWeight    float64 `json:"avg_head_weight"`
	YieldPerHectare  float64 `json:"yield_per_hectare"`
	TotalPlants      float64 `json:"total_plants"`
}

// ValidationError lists every offending input field.
type ValidationError = validate.Error

// Rand is the source for the season-over-season increase.
type Rand interface {
	Intn(n int) int
}

// Validate checks presence, positivity and enum membership against t.
// Variety is free text: an untabled variety scores 1.0.
func Validate(t *Table, in Input) error {
	bad, err := validate.Fields(in)
	if err != nil {
		return err
	}
	if in.CropType != "" {
		if _, ok := t.BaseYield[in.CropType]; !ok {
			bad = append(bad, "crop_type")
		}
	}
	for _, f := range factorOrder {
		val := in.factor(f)
		if val == "" || f == FactorVariety {
			continue
		}
		if _, ok := t.Multipliers[f][val]; !ok {
			bad = append(bad, f)
		}
	}
	return validate.New(bad...)
}

// Estimate validates in and computes the prediction. Nothing is computed when
// validation fails.
func Estimate(t *Table, in Input, rnd Rand) (Result, error) {
	if err := Validate(t, in); err != nil {
		return Result{}, err
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}

	mult := 1.0
	for _, f := range factorOrder {
		mult *= t.Multiplier(f, in.factor(f))
	}

	area, density := *in.FarmArea, *in.PlantingDensity
	perPlant := t.BaseYield[in.CropType] * mult
	totalPlants := area * density
	totalKg := totalPlants * perPlant
	tons := round1(totalKg / 1000)

	return Result{
		PredictedYield:   tons,
		PredictedRevenue: int64(math.Round(totalKg * t.Prices[in.CropType])),
		ExpectedIncrease: rnd.Intn(21) - 5,
		AvgHeadWeight:    round1(perPlant),
		YieldPerHectare:  round1(tons / area),
		TotalPlants:      totalPlants,
	}, nil
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
