package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "cropwise/pkg/auth/controller"
	chatCtrl "cropwise/pkg/chat/controller"
	farmCtrl "cropwise/pkg/farm/controller"
	growthCtrl "cropwise/pkg/growth/controller"
	marketCtrl "cropwise/pkg/market/controller"
	"cropwise/pkg/middleware"
	recordsCtrl "cropwise/pkg/records/controller"
	userCtrl "cropwise/pkg/user/controller"
	weatherCtrl "cropwise/pkg/weather/controller"
	yieldCtrl "cropwise/pkg/yield/controller"
)

type Handlers struct {
	Auth    authCtrl.AuthController
	Health  interface{ Health(echo.Context) error }
	Farm    farmCtrl.FarmController
	Yield   yieldCtrl.YieldController
	Growth  growthCtrl.GrowthController
	Records recordsCtrl.RecordsController
	Weather weatherCtrl.WeatherController
	Market  marketCtrl.MarketController
	Chat    chatCtrl.ChatController
	User    userCtrl.UserController
}

func New(e *echo.Echo, h Handlers, devLogin bool) *echo.Echo {
	e.GET("/health", h.Health.Health)
	e.POST("/auth/signin", h.Auth.SignIn)
	e.POST("/auth/signout", h.Auth.SignOut)

	api := e.Group("/api")
	if devLogin {
		api.Use(middleware.DevLogin())
	}
	api.Use(middleware.RequireSession())

	api.GET("/whoami", h.Auth.WhoAmI)

	api.GET("/user/profile", h.User.Get)
	api.PUT("/user/profile", h.User.Save)
	api.PUT("/user/theme", h.User.SetTheme)

	api.GET("/farm", h.Farm.Get)
	api.PUT("/farm/crops", h.Farm.SetCrops)
	api.PUT("/farm/prices", h.Farm.SetPrices)
	api.POST("/farm/recalculate", h.Farm.Recalculate)

	api.POST("/yield/predict", h.Yield.Predict)
	api.GET("/yield/latest", h.Yield.Latest)
	api.GET("/yield/history", h.Yield.History)

	api.POST("/growth", h.Growth.Create)
	api.GET("/growth", h.Growth.List)
	api.DELETE("/growth/:id", h.Growth.Delete)
	api.GET("/growth/summary", h.Growth.Summary)

	rec := api.Group("/records")
	rec.POST("", h.Records.CreateRecord)
	rec.GET("", h.Records.ListRecords)
	rec.PATCH("/:id", h.Records.PatchRecord)
	rec.DELETE("/:id", h.Records.DeleteRecord)
	rec.GET("/summary", h.Records.Summary)
	rec.GET("/series", h.Records.Series)
	rec.GET("/export", h.Records.Export)

	api.POST("/activities", h.Records.CreateActivity)
	api.GET("/activities", h.Records.ListActivities)
	api.DELETE("/activities/:id", h.Records.DeleteActivity)

	api.POST("/production", h.Records.CreateProduction)
	api.GET("/production", h.Records.ListProduction)
	api.GET("/production/by-crop", h.Records.ProductionByCrop)
	api.DELETE("/production/:id", h.Records.DeleteProduction)

	api.POST("/inventory", h.Records.CreateInventory)
	api.GET("/inventory", h.Records.ListInventory)
	api.PATCH("/inventory/:id", h.Records.PatchInventory)
	api.DELETE("/inventory/:id", h.Records.DeleteInventory)

	api.GET("/weather", h.Weather.Overview)
	api.GET("/weather/current", h.Weather.Current)
	api.GET("/weather/last", h.Weather.Last)
	api.GET("/weather/advice", h.Weather.Advice)
	api.GET("/weather/forecast", h.Weather.Daily)

	api.GET("/market/prices", h.Market.Prices)
	api.GET("/market/trends", h.Market.Trends)
	api.POST("/market/import", h.Market.Import)

	api.POST("/chat", h.Chat.Send)
	api.GET("/chat", h.Chat.History)
	api.DELETE("/chat", h.Chat.Clear)
	return e
}
