package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cropwise/config"
	"cropwise/database"
	"cropwise/router"

	authCtrlImp "cropwise/pkg/auth/controllerImp"
	healthCtrlImp "cropwise/pkg/health/controllerImp"
	"cropwise/pkg/scheduler"

	"cropwise/pkg/chat"
	chatCtrlImp "cropwise/pkg/chat/controllerImp"
	chatRepoImp "cropwise/pkg/chat/repositoryImp"
	chatSvcImp "cropwise/pkg/chat/serviceImp"

	farmCtrlImp "cropwise/pkg/farm/controllerImp"
	farmRepoImp "cropwise/pkg/farm/repositoryImp"
	farmSvcImp "cropwise/pkg/farm/serviceImp"

	growthCtrlImp "cropwise/pkg/growth/controllerImp"
	growthRepoImp "cropwise/pkg/growth/repositoryImp"
	growthSvcImp "cropwise/pkg/growth/serviceImp"

	"cropwise/pkg/market"
	marketCtrlImp "cropwise/pkg/market/controllerImp"
	marketRepoImp "cropwise/pkg/market/repositoryImp"
	marketSvcImp "cropwise/pkg/market/serviceImp"

	recordsCtrlImp "cropwise/pkg/records/controllerImp"
	recordsRepoImp "cropwise/pkg/records/repositoryImp"
	recordsSvcImp "cropwise/pkg/records/serviceImp"

	userCtrlImp "cropwise/pkg/user/controllerImp"
	userRepoImp "cropwise/pkg/user/repositoryImp"
	userSvcImp "cropwise/pkg/user/serviceImp"

	"cropwise/pkg/weather"
	weatherCtrlImp "cropwise/pkg/weather/controllerImp"
	weatherRepoImp "cropwise/pkg/weather/repositoryImp"
	weatherSvcImp "cropwise/pkg/weather/serviceImp"

	"cropwise/pkg/yield"
	yieldCtrlImp "cropwise/pkg/yield/controllerImp"
	yieldRepoImp "cropwise/pkg/yield/repositoryImp"
	yieldSvcImp "cropwise/pkg/yield/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (postgres if DATABASE_URL, else sqlite) + automigrate
	db := database.Open(cfg.DatabaseURL, cfg.DBPath)

	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[main] unknown TZ %q, using UTC: %v", cfg.Timezone, err)
		tz = time.UTC
	}

	// 3) Yield table (defaults unless YIELD_TABLE_PATH is set)
	table, err := yield.LoadTable(cfg.YieldTablePath)
	if err != nil {
		log.Fatalf("[main] yield table: %v", err)
	}

	// 4) Services
	weatherSvc := weatherSvcImp.NewWeatherService(
		weather.NewOWMClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey),
		weatherRepoImp.New(db),
		weatherSvcImp.Location{Lat: cfg.FarmLat, Lon: cfg.FarmLon, Name: cfg.FarmLocation, TZ: tz},
	)
	marketSvc := marketSvcImp.NewMarketService(marketRepoImp.New(db), market.NewFetcher(cfg.MarketAllowList))
	if err := marketSvc.Seed(); err != nil {
		log.Printf("[main] market seed: %v", err)
	}
	userSvc := userSvcImp.NewUserService(userRepoImp.New(db), time.Duration(cfg.ThemeDebounceMS)*time.Millisecond)
	// chat falls back to the keyword responder without an LLM backend
	var bot chat.Responder = chat.NewKeywordResponder()
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		bot = chat.NewLLMResponder(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, bot)
	}
	recordsSvc := recordsSvcImp.New(
		recordsRepoImp.NewRecordRepo(db),
		recordsRepoImp.NewActivityRepo(db),
		recordsRepoImp.NewProductionRepo(db),
		recordsRepoImp.NewInventoryRepo(db),
	)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	router.New(e, router.Handlers{
		Auth:    authCtrlImp.NewAuthController(),
		Health:  healthCtrlImp.NewHealthCtrl(db, cfg.WeatherAPIKey != ""),
		Farm:    farmCtrlImp.New(farmSvcImp.NewFarmService(farmRepoImp.New(db))),
		Yield:   yieldCtrlImp.New(yieldSvcImp.NewYieldService(yieldRepoImp.New(db), table, nil)),
		Growth:  growthCtrlImp.New(growthSvcImp.NewGrowthService(growthRepoImp.New(db))),
		Records: recordsCtrlImp.New(recordsSvc),
		Weather: weatherCtrlImp.New(weatherSvc),
		Market:  marketCtrlImp.New(marketSvc),
		Chat:    chatCtrlImp.New(chatSvcImp.NewChatService(chatRepoImp.New(db), bot)),
		User:    userCtrlImp.New(userSvc),
	}, cfg.EnableDevLogin)

	// 6) Scheduled weather refresh
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.NewScheduler(ctx, weatherSvc)
	if cfg.WeatherAPIKey == "" {
		log.Println("[main] OWM_API_KEY not set, weather refresh disabled")
	} else if err := sched.RegisterAll(cfg.RefreshCron); err != nil {
		log.Fatalf("[main] %v", err)
	} else {
		sched.Start()
		go func() {
			if err := sched.RunWeatherNow(); err != nil {
				log.Printf("[main] initial weather refresh: %v", err)
			}
		}()
	}

	// 7) Start
	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("[main] shutting down")
	sched.Stop()
	userSvc.Flush()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
}
