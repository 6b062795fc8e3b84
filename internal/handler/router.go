package handler

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stay-picker/internal/handler/api"
	"stay-picker/internal/handler/middleware"
	"stay-picker/internal/pkg/config"
)

// route is one endpoint; Mw runs before Handler for that endpoint only.
type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health     *api.HealthHandler
	StayPicker *api.StayPickerHandler
	Location   *api.LocationHandler
}

type Middlewares struct {
	Logger      *middleware.Logger
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	guest := []gin.HandlerFunc{mw.Auth.RequireAuth()}

	apiGroup := engine.Group("/api")
	apiGroup.Use(mw.RateLimiter.Middleware())
	{
		picker := apiGroup.Group("/stay-picker")
		{
			addRoutes(picker, []route{
				{Method: http.MethodGet, Path: "/slots/checkin", Handler: h.StayPicker.CheckInSlots},
				{Method: http.MethodGet, Path: "/slots/checkout", Handler: h.StayPicker.CheckOutSlots},
				{Method: http.MethodPost, Path: "/wizard/events", Handler: h.StayPicker.ApplyEvent},
				{Method: http.MethodPost, Path: "/ranges", Handler: h.StayPicker.SaveStayRange, Mw: guest},
				{Method: http.MethodGet, Path: "/ranges/latest", Handler: h.StayPicker.LatestStayRange, Mw: guest},
			})
		}

		location := apiGroup.Group("/location")
		{
			addRoutes(location, []route{
				{Method: http.MethodPost, Path: "/check", Handler: h.Location.Check},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, append(slices.Clone(r.Mw), r.Handler)...)
	}
}
