package serviceImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwise/database"
	"cropwise/pkg/yield"
	"cropwise/pkg/yield/repositoryImp"
	"cropwise/pkg/yield/service"
)

type fixedRand int

func (f fixedRand) Intn(int) int { return int(f) }

func f64(v float64) *float64 { return &v }

func newSvc(t *testing.T) service.YieldService {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return NewYieldService(repositoryImp.New(db), nil, fixedRand(7))
}

func input() yield.Input {
	return yield.Input{
		CropType: "kale", FarmArea: f64(0.5), PlantingDensity: f64(20000),
		Variety: "standard", Conditions: "good", SoilType: "loamy", Irrigation: "sprinkler",
		Fertilizer: "npk", PestManagement: "chemical", Season: "short-rains",
	}
}

func TestPredict_PersistsAndLatest(t *testing.T) {
	s := newSvc(t)

	_, err := s.Latest("u1")
	assert.ErrorIs(t, err, service.ErrNoPrediction)

	first, err := s.Predict("u1", input())
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 2, first.ExpectedIncrease)

	in := input()
	in.CropType = "cabbage"
	second, err := s.Predict("u1", in)
	require.NoError(t, err)

	latest, err := s.Latest("u1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	hist, err := s.History("u1", 0)
	require.NoError(t, err)
	assert.Len(t, hist, 2)
}

func TestPredict_InvalidStoresNothing(t *testing.T) {
	s := newSvc(t)
	in := input()
	in.Irrigation = "bucket"

	_, err := s.Predict("u1", in)
	var ve *yield.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"irrigation"}, ve.Fields)

	hist, err := s.History("u1", 0)
	require.NoError(t, err)
	assert.Empty(t, hist)
}
