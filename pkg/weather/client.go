package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotConfigured = errors.New("weather api key not configured")
	ErrProvider      = errors.New("weather provider error")
	ErrEmptyForecast = errors.New("forecast has no slots")
)

type Main struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity float64 `json:"humidity"`
}

type Sky struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

// CurrentResponse is the subset of /data/2.5/weather we read.
type CurrentResponse struct {
	Name    string `json:"name"`
	Main    Main   `json:"main"`
	Weather []Sky  `json:"weather"`
	Wind    Wind   `json:"wind"`
}

func (c *CurrentResponse) Condition() string {
	if len(c.Weather) == 0 {
		return ""
	}
	return c.Weather[0].Main
}

type ForecastItem struct {
	Dt      int64 `json:"dt"`
	Main    Main  `json:"main"`
	Weather []Sky `json:"weather"`
	Wind    Wind  `json:"wind"`
	Rain    *struct {
		ThreeH float64 `json:"3h"`
	} `json:"rain,omitempty"`
}

func (f ForecastItem) Condition() string {
	if len(f.Weather) == 0 {
		return ""
	}
	return f.Weather[0].Main
}

func (f ForecastItem) Rain3h() float64 {
	if f.Rain == nil {
		return 0
	}
	return f.Rain.ThreeH
}

// ForecastResponse is the subset of /data/2.5/forecast (3-hour slots) we read.
type ForecastResponse struct {
	List []ForecastItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

type Provider interface {
	Current(ctx context.Context, lat, lon float64) (*CurrentResponse, error)
	Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error)
}

// OWMClient talks to an OpenWeatherMap-compatible API.
type OWMClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewOWMClient(baseURL, apiKey string) *OWMClient {
	return &OWMClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *OWMClient) Current(ctx context.Context, lat, lon float64) (*CurrentResponse, error) {
	var out CurrentResponse
	if err := c.get(ctx, "/data/2.5/weather", lat, lon, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *OWMClient) Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	var out ForecastResponse
	if err := c.get(ctx, "/data/2.5/forecast", lat, lon, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *OWMClient) get(ctx context.Context, path string, lat, lon float64, into any) error {
	if c.APIKey == "" {
		return ErrNotConfigured
	}
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("units", "metric")
	q.Set("appid", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s returned %d: %s", ErrProvider, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrProvider, path, err)
	}
	return nil
}
