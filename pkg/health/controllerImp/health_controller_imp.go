package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

const pingTimeout = 800 * time.Millisecond

// Check is the outcome of one dependency probe.
type Check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

type HealthCtrl struct {
	db                *gorm.DB
	weatherConfigured bool
}

func NewHealthCtrl(db *gorm.DB, weatherConfigured bool) *HealthCtrl {
	return &HealthCtrl{db: db, weatherConfigured: weatherConfigured}
}

func (h *HealthCtrl) database(ctx context.Context) Check {
	if h.db == nil {
		return Check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return Check{Err: "db.DB(): " + err.Error()}
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return Check{Err: "ping: " + err.Error()}
	}
	return Check{OK: true}
}

func (h *HealthCtrl) weather() Check {
	if !h.weatherConfigured {
		return Check{Err: "OWM_API_KEY not set"}
	}
	return Check{OK: true}
}

// Health answers 503 only when the database is down. A missing weather key
// marks the status degraded.
func (h *HealthCtrl) Health(c echo.Context) error {
	db := h.database(c.Request().Context())
	wx := h.weather()

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, echo.Map{
		"status":     echo.Map{"ok": db.OK, "degraded": !wx.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     map[string]Check{"database": db, "weather": wx},
		"time":       time.Now().Format(time.RFC3339),
	})
}
