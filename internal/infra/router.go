package infra

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm-console/internal/client"
	"github.com/umalmyha/crm-console/internal/handlers"
	"github.com/umalmyha/crm-console/internal/middleware"
	"github.com/umalmyha/crm-console/internal/service"
	"github.com/umalmyha/crm-console/internal/session"
	"github.com/umalmyha/crm-console/internal/validation"
)

// RouterCfg carries settings of console routes
type RouterCfg struct {
	PageSize   int
	SessionCfg middleware.SessionCfg
}

func Router(api client.CustomerAPI, store session.Store, cfg RouterCfg) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		logrus.WithFields(logrus.Fields{"uri": c.Request().RequestURI}).Errorf("error occurred on request processing - %v", err)
		e.DefaultHTTPErrorHandler(err, c)
	}

	// Extra functionality
	renderer, err := handlers.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	validator, err := validation.English()
	if err != nil {
		return nil, err
	}
	e.Validator = validator

	// Middleware
	sessionMw := middleware.Session(cfg.SessionCfg)
	e.Use(middleware.RequestLogger())

	// Services
	landingSvc := service.NewLandingService(api, store, validator, cfg.PageSize)
	dashboardSvc := service.NewDashboardService(api, store, validator)

	// Handlers
	landingHandler := handlers.NewLandingHTTPHandler(landingSvc)
	dashboardHandler := handlers.NewDashboardHTTPHandler(dashboardSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// landing
	landing := e.Group("", sessionMw)
	landing.GET("/", landingHandler.Index)
	landing.POST("/search", landingHandler.Search)
	landing.POST("/page/next", landingHandler.NextPage)
	landing.POST("/page/prev", landingHandler.PrevPage)
	landing.POST("/customers/new", landingHandler.OpenNew)
	landing.POST("/customers", landingHandler.Create)
	landing.POST("/customers/:customerId/edit", landingHandler.OpenEdit)
	landing.POST("/customers/:customerId", landingHandler.Update)
	landing.POST("/modal/close", landingHandler.CloseModal)

	// dashboard
	dashboard := e.Group("/dashboard/:customerId", sessionMw)
	dashboard.GET("", dashboardHandler.Show)
	dashboard.POST("/contacts/new", dashboardHandler.OpenNewContact)
	dashboard.POST("/contacts", dashboardHandler.CreateContact)
	dashboard.POST("/contacts/:contactId/edit", dashboardHandler.OpenEditContact)
	dashboard.POST("/contacts/:contactId", dashboardHandler.UpdateContact)
	dashboard.POST("/contacts/:contactId/delete", dashboardHandler.DeleteContact)
	dashboard.POST("/markets/new", dashboardHandler.OpenNewMarket)
	dashboard.POST("/markets", dashboardHandler.CreateMarket)
	dashboard.POST("/markets/delete", dashboardHandler.DeleteMarket)
	dashboard.POST("/subjects/new", dashboardHandler.OpenNewSubject)
	dashboard.POST("/subjects", dashboardHandler.CreateSubject)
	dashboard.POST("/subjects/delete", dashboardHandler.DeleteSubject)
	dashboard.POST("/modal/select", dashboardHandler.SelectModal)
	dashboard.POST("/modal/refresh", dashboardHandler.RefreshModal)
	dashboard.POST("/modal/close", dashboardHandler.CloseModal)

	return e, nil
}
