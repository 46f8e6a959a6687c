package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	// DatabaseURL selects Postgres instead of the SQLite file
	DatabaseURL string

	// weather provider (OpenWeatherMap-compatible)
	WeatherAPIKey  string
	WeatherBaseURL string
	FarmLat        float64
	FarmLon        float64
	FarmLocation   string
	RefreshCron    string

	// optional OpenAI-compatible chat backend
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	YieldTablePath  string
	MarketAllowList []string
	ThemeDebounceMS int
	EnableDevLogin  bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if v, err := strconv.ParseFloat(get(k, ""), 64); err == nil {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(get(k, "")); err == nil && v >= 0 {
			return v
		}
		return def
	}

	var allow []string
	for _, h := range strings.Split(get("MARKET_ALLOWED_DOMAINS", ""), ",") {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allow = append(allow, h)
		}
	}

	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Africa/Nairobi"),
		DBPath:          get("DB_PATH", "cropwise.db"),
		DatabaseURL:     get("DATABASE_URL", ""),
		WeatherAPIKey:   get("OWM_API_KEY", ""),
		WeatherBaseURL:  get("OWM_BASE_URL", "https://api.openweathermap.org"),
		FarmLat:         getFloat("FARM_LAT", -0.2833),
		FarmLon:         getFloat("FARM_LON", 36.0667),
		FarmLocation:    get("FARM_LOCATION", "Nakuru, Rongai"),
		RefreshCron:     get("WEATHER_REFRESH_CRON", "0 */30 * * * *"),
		LLMEndpoint:     get("LLM_ENDPOINT", ""),
		LLMAPIKey:       get("LLM_API_KEY", ""),
		LLMModel:        get("LLM_MODEL", "gpt-4o-mini"),
		YieldTablePath:  get("YIELD_TABLE_PATH", ""),
		MarketAllowList: allow,
		ThemeDebounceMS: getInt("THEME_DEBOUNCE_MS", 500),
		EnableDevLogin:  get("DEV_LOGIN", "false") == "true",
	}
	log.Printf("[cfg] port=%s db=%s postgres=%t location=%q weather_key_set=%t yield_table=%q",
		cfg.Port, cfg.DBPath, cfg.DatabaseURL != "", cfg.FarmLocation, cfg.WeatherAPIKey != "", cfg.YieldTablePath)
	return cfg
}
