package serviceImp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cropwise/entities"
	"cropwise/pkg/market"
	repo "cropwise/pkg/market/repository"
	"cropwise/pkg/market/service"
)

type PriceSource interface {
	Fetch(ctx context.Context, rawURL string) ([]entities.MarketPrice, error)
}

type marketSvc struct {
	r   repo.MarketRepository
	src PriceSource
}

func NewMarketService(r repo.MarketRepository, src PriceSource) service.MarketService {
	return &marketSvc{r: r, src: src}
}

func (s *marketSvc) Seed() error {
	n, err := s.r.CountPrices()
	if err != nil {
		return err
	}
	if n == 0 {
		if err := s.r.UpsertPrices(market.SeedPrices()); err != nil {
			return fmt.Errorf("seed prices: %w", err)
		}
		log.Println("[market] seeded default prices")
	}
	n, err = s.r.CountTrends()
	if err != nil {
		return err
	}
	if n == 0 {
		if err := s.r.SaveTrends(market.SeedTrends()); err != nil {
			return fmt.Errorf("seed trends: %w", err)
		}
		log.Println("[market] seeded default trends")
	}
	return nil
}

func (s *marketSvc) Prices(crop string) ([]entities.MarketPrice, error) {
	return s.r.ListPrices(strings.ToLower(strings.TrimSpace(crop)))
}

func (s *marketSvc) Trends() (map[string]float64, error) {
	list, err := s.r.ListTrends()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(list))
	for _, t := range list {
		out[t.Period] = t.Percent
	}
	return out, nil
}

func (s *marketSvc) Import(ctx context.Context, rawURL string) (*service.ImportResult, error) {
	rows, err := s.src.Fetch(ctx, rawURL)
	if err != nil {
		log.Printf("[market] import %s: %v", rawURL, err)
		return nil, err
	}
	if err := s.r.UpsertPrices(rows); err != nil {
		return nil, fmt.Errorf("save imported prices: %w", err)
	}
	log.Printf("[market] imported %d prices from %s", len(rows), rawURL)
	return &service.ImportResult{Source: rawURL, Imported: len(rows)}, nil
}
