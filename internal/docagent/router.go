package docagent

import (
	"github.com/gin-gonic/gin"
	"github.com/hibiki-ai/docagent/internal/docagent/handler"
)

// routerDeps holds the dependencies needed for route registration.
type routerDeps struct {
	app *handler.AppContext
}

func initRouter(g *gin.Engine, deps *routerDeps) {
	installController(g, deps)
}

func installController(g *gin.Engine, deps *routerDeps) {
	indexHandler := handler.NewIndexHandler(deps.app)
	chatHandler := handler.NewChatHandler(deps.app)
	toolsHandler := handler.NewToolsHandler(deps.app)
	settingsHandler := handler.NewSettingsHandler(deps.app)

	g.GET("/", indexHandler.Handle)

	api := g.Group("/api")
	{
		api.POST("/chat", chatHandler.Handle)
		api.GET("/tools", toolsHandler.Handle)
		api.GET("/settings", settingsHandler.Handle)
	}
}
