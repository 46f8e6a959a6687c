package service

import (
	"errors"

	"cropwise/entities"
	"cropwise/pkg/yield"
)

var ErrNoPrediction = errors.New("no prediction yet")

type YieldService interface {
	Predict(userKey string, in yield.Input) (*entities.YieldPrediction, error)
	Latest(userKey string) (*entities.YieldPrediction, error)
	History(userKey string, limit int) ([]entities.YieldPrediction, error)
}
