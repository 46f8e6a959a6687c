package growth

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cropwise/entities"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errors.New("expected harvest must be after planting")
	ErrNoData           = errors.New("no data")
	ErrUnknownCrop      = errors.New("unknown crop type")
)

// Growing periods in days, keyed by lower-case crop type.
var growingPeriods = map[string]int{
	"cabbage": 70,
	"kale":    60,
	"tomato":  80,
	"lettuce": 45,
	"carrot":  75,
}

var stageProgress = map[string]int{
	"seedling":   10,
	"vegetative": 30,
	"flowering":  60,
	"fruiting":   80,
	"harvest":    100,
}

// Tonnes per acre at full health.
var yieldPerAcre = map[string]float64{
	"Cabbage":  12,
	"Kale":     8,
	"Tomatoes": 15,
	"Onions":   10,
	"Spinach":  6,
}

const defaultYieldPerAcre = 8

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

// Progress is the elapsed share of the planted→harvest window, in [0,100].
func Progress(planted, harvest, now time.Time) (float64, error) {
	total := harvest.Sub(planted)
	if total <= 0 {
		return 0, ErrInvalidDateRange
	}
	return clamp(float64(now.Sub(planted))/float64(total)*100, 0, 100), nil
}

// CropProgress parses the crop's dates and returns the rounded progress.
func CropProgress(c entities.Crop, now time.Time) (int, error) {
	planted, err := time.ParseInLocation(DateLayout, c.PlantedDate, now.Location())
	if err != nil {
		return 0, fmt.Errorf("%s planted date: %w", c.Name, err)
	}
	harvest, err := time.ParseInLocation(DateLayout, c.ExpectedHarvestDate, now.Location())
	if err != nil {
		return 0, fmt.Errorf("%s harvest date: %w", c.Name, err)
	}
	p, err := Progress(planted, harvest, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.Name, err)
	}
	return int(math.Round(p)), nil
}

func health(c entities.Crop) float64 {
	if c.Health <= 0 {
		return 100
	}
	return clamp(float64(c.Health), 0, 100)
}

// HealthyPlantsPercentage is the mean crop health; crops without a reading
// count as fully healthy.
func HealthyPlantsPercentage(crops []entities.Crop) (float64, error) {
	if len(crops) == 0 {
		return 0, ErrNoData
	}
	sum := 0.0
	for _, c := range crops {
		sum += health(c)
	}
	return sum / float64(len(crops)), nil
}

var leadingNumber = regexp.MustCompile(`^\s*[-+]?(\d+(\.\d*)?|\.\d+)`)

// ParseAcres reads the leading number of a free-text area such as
// "0.4 acres". Anything unparseable or negative is 0.
func ParseAcres(area string) float64 {
	m := leadingNumber.FindString(area)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ExpectedYield sums per-crop tonnage scaled by area and health.
func ExpectedYield(crops []entities.Crop) float64 {
	total := 0.0
	for _, c := range crops {
		per, ok := yieldPerAcre[c.Name]
		if !ok {
			per = defaultYieldPerAcre
		}
		total += per * ParseAcres(c.Area) * health(c) / 100
	}
	return total
}

func StageProgress(stage string) int {
	return stageProgress[strings.ToLower(strings.TrimSpace(stage))]
}

func GrowingPeriod(cropType string) (int, error) {
	d, ok := growingPeriods[strings.ToLower(strings.TrimSpace(cropType))]
	if !ok {
		return 0, fmt.Errorf("%q: %w", cropType, ErrUnknownCrop)
	}
	return d, nil
}

// ExpectedHarvest is plantDate plus the crop's growing period.
func ExpectedHarvest(cropType string, plantDate time.Time) (time.Time, error) {
	d, err := GrowingPeriod(cropType)
	if err != nil {
		return time.Time{}, err
	}
	return plantDate.AddDate(0, 0, d), nil
}
