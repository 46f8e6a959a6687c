package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"cropwise/entities"
	"cropwise/pkg/climate"
	"cropwise/pkg/weather"
	repo "cropwise/pkg/weather/repository"
	"cropwise/pkg/weather/service"
)

type Location struct {
	Lat, Lon float64
	Name     string
	TZ       *time.Location
}

type weatherSvc struct {
	p   weather.Provider
	r   repo.WeatherRepository
	loc Location
	now func() time.Time
}

func NewWeatherService(p weather.Provider, r repo.WeatherRepository, loc Location) service.WeatherService {
	if loc.TZ == nil {
		loc.TZ = time.UTC
	}
	return &weatherSvc{p: p, r: r, loc: loc, now: time.Now}
}

func (s *weatherSvc) Current(ctx context.Context, userKey string) (*entities.WeatherSnapshot, error) {
	cur, err := s.p.Current(ctx, s.loc.Lat, s.loc.Lon)
	if err != nil {
		log.Printf("[weather] current lat=%.4f lon=%.4f: %v", s.loc.Lat, s.loc.Lon, err)
		return nil, err
	}
	snap := weather.Snapshot(userKey, s.loc.Name, cur, s.now())
	if err := s.r.Save(snap); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	return snap, nil
}

func (s *weatherSvc) Last(userKey string) (*entities.WeatherSnapshot, error) {
	snap, err := s.r.Find(userKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNoSnapshot
	}
	return snap, err
}

func (s *weatherSvc) forecast(ctx context.Context) (*weather.ForecastResponse, error) {
	f, err := s.p.Forecast(ctx, s.loc.Lat, s.loc.Lon)
	if err != nil {
		log.Printf("[weather] forecast lat=%.4f lon=%.4f: %v", s.loc.Lat, s.loc.Lon, err)
		return nil, err
	}
	return f, nil
}

func (s *weatherSvc) Advice(ctx context.Context) (*service.Report, error) {
	f, err := s.forecast(ctx)
	if err != nil {
		return nil, err
	}
	c, err := f.Conditions()
	if err != nil {
		return nil, err
	}
	return &service.Report{Conditions: c, Advice: climate.Advise(c)}, nil
}

func (s *weatherSvc) Daily(ctx context.Context) ([]weather.Day, error) {
	f, err := s.forecast(ctx)
	if err != nil {
		return nil, err
	}
	return f.Daily(s.loc.TZ, s.now()), nil
}

func (s *weatherSvc) Overview(ctx context.Context, userKey string) (*service.Overview, error) {
	var (
		snap *entities.WeatherSnapshot
		f    *weather.ForecastResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap, err = s.Current(gctx, userKey)
		return err
	})
	g.Go(func() (err error) {
		f, err = s.forecast(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	c, err := f.Conditions()
	if err != nil {
		return nil, err
	}
	return &service.Overview{
		Current: snap,
		Days:    f.Daily(s.loc.TZ, s.now()),
		Report:  service.Report{Conditions: c, Advice: climate.Advise(c)},
	}, nil
}

func (s *weatherSvc) Refresh(ctx context.Context) error {
	snap, err := s.Current(ctx, service.FarmKey)
	if err != nil {
		return err
	}
	log.Printf("[weather] refreshed %s: %.1fC %s", snap.Location, snap.Temperature, snap.Condition)
	return nil
}
