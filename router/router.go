package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	cropCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	solutionCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		GetByDisease(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	detectCtrl interface{ Analyze(echo.Context) error },
	guideCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		List(echo.Context) error
		Search(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
	},
	healthCtrl interface {
		Health(echo.Context) error
		TestDB(echo.Context) error
	},
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")
	api.GET("/test", healthCtrl.TestDB)

	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/:id", cropCtrl.Get)
	api.POST("/crops", cropCtrl.Create)
	api.PUT("/crops/:id", cropCtrl.Update)
	api.DELETE("/crops/:id", cropCtrl.Delete)

	api.GET("/solutions", solutionCtrl.List)
	// register the disease lookup before :id so echo matches the literal segment
	api.GET("/solutions/disease/:name", solutionCtrl.GetByDisease)
	api.GET("/solutions/:id", solutionCtrl.Get)
	api.POST("/solutions", solutionCtrl.Create)
	api.PUT("/solutions/:id", solutionCtrl.Update)
	api.DELETE("/solutions/:id", solutionCtrl.Delete)

	api.POST("/detect", detectCtrl.Analyze)

	api.POST("/guides", guideCtrl.IngestText)
	api.POST("/guides/url", guideCtrl.IngestURL)
	api.GET("/guides", guideCtrl.List)
	api.GET("/guides/search", guideCtrl.Search)
	api.GET("/guides/:id", guideCtrl.Get)
	api.DELETE("/guides/:id", guideCtrl.Delete)

	return e
}
