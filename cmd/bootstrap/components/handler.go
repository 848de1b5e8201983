package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewEngine,
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewItemRequestHandler,
	),
	fx.Invoke(handler.NewRouter),
)

// NewEngine returns a bare engine; all middleware is attached by the router.
func NewEngine() *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.ContextWithFallback = true
	return engine
}
