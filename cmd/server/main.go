package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmassist/config"
	"farmassist/database"
	"farmassist/router"

	"farmassist/pkg/classifier"
	"farmassist/pkg/remedy"

	cropCtrlImp "farmassist/pkg/crop/controllerImp"
	cropRepoImp "farmassist/pkg/crop/repositoryImp"

	solutionCtrlImp "farmassist/pkg/solution/controllerImp"
	solutionRepoImp "farmassist/pkg/solution/repositoryImp"

	detectCtrlImp "farmassist/pkg/detect/controllerImp"
	detectSvcImp "farmassist/pkg/detect/serviceImp"

	guideCtrlImp "farmassist/pkg/guide/controllerImp"
	guideRepoImp "farmassist/pkg/guide/repositoryImp"
	guideSvcImp "farmassist/pkg/guide/serviceImp"

	healthCtrlImp "farmassist/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + bounded pool
	db := database.Open(cfg.DBPath, cfg.DBMaxConns)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) Remedy fallback tables (workbook override is optional)
	fallback := remedy.Load(cfg.RemedyXLSX)

	// 5) External classifier
	model := classifier.NewHTTP(cfg.PredictEndpoint, time.Duration(cfg.PredictTimeout)*time.Second)

	// 6) Repos
	cropRepo := cropRepoImp.New(db)
	solutionRepo := solutionRepoImp.New(db)
	guideRepo := guideRepoImp.New(db)

	// 7) Services + controllers
	detectSvc := detectSvcImp.New(model, solutionRepo, fallback)
	guideSvc := guideSvcImp.New(guideRepo)

	cropCtrl := cropCtrlImp.New(cropRepo)
	solutionCtrl := solutionCtrlImp.New(solutionRepo)
	detectCtrl := detectCtrlImp.New(detectSvc)
	guideCtrl := guideCtrlImp.New(guideSvc, cfg.GuideDomains, cfg.GuideMaxBytes)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(e, cropCtrl, solutionCtrl, detectCtrl, guideCtrl, healthCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
