package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *middleware.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Bookings *api.BookingHandler
	Items    *api.ItemHandler
	Users    *api.UserHandler
	Requests *api.ItemRequestHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Config.Metrics.Enabled {
		p.Engine.Use(middleware.MetricsMiddleware(p.Metrics))
	}
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Users.Create},
			{Method: http.MethodGet, Path: "", Handler: p.Users.List},
			{Method: http.MethodGet, Path: "/:userId", Handler: p.Users.Get},
			{Method: http.MethodPatch, Path: "/:userId", Handler: p.Users.Update},
			{Method: http.MethodDelete, Path: "/:userId", Handler: p.Users.Delete},
		})
	}

	identified := engine.Group("")
	identified.Use(middleware.RequireIdentity())

	bookings := identified.Group("/bookings")
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Bookings.Create},
			{Method: http.MethodGet, Path: "", Handler: p.Bookings.ListByBooker},
			{Method: http.MethodGet, Path: "/owner", Handler: p.Bookings.ListByOwner},
			{Method: http.MethodGet, Path: "/:bookingId", Handler: p.Bookings.Get},
			{Method: http.MethodPatch, Path: "/:bookingId", Handler: p.Bookings.Decide},
		})
	}

	items := identified.Group("/items")
	{
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Items.Create},
			{Method: http.MethodGet, Path: "", Handler: p.Items.ListByOwner},
			{Method: http.MethodGet, Path: "/search", Handler: p.Items.Search},
			{Method: http.MethodGet, Path: "/:itemId", Handler: p.Items.Get},
			{Method: http.MethodPatch, Path: "/:itemId", Handler: p.Items.Update},
			{Method: http.MethodPost, Path: "/:itemId/comment", Handler: p.Items.AddComment},
		})
	}

	requests := identified.Group("/requests")
	{
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Requests.Create},
			{Method: http.MethodGet, Path: "", Handler: p.Requests.ListOwn},
			{Method: http.MethodGet, Path: "/all", Handler: p.Requests.ListOthers},
			{Method: http.MethodGet, Path: "/:requestId", Handler: p.Requests.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
