package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK    bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}
	return c.JSON(status, map[string]any{
		"ok":        dbOK,
		"uptime_s":  int(time.Since(appStart).Seconds()),
		"db":        sub{OK: dbOK, Error: dbErr},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// TestDB backs GET /api/test, the admin UI's connectivity probe.
func (h *HealthCtrl) TestDB(c echo.Context) error {
	var connected int
	if err := h.db.Raw("SELECT 1 as connected").Scan(&connected).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Database connection failed", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Database connected successfully", "data": connected})
}
