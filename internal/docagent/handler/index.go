package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
	"github.com/jinzhu/copier"
)

// IndexHandler serves the main page.
type IndexHandler struct {
	app *AppContext
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(app *AppContext) *IndexHandler {
	return &IndexHandler{app: app}
}

// Handle renders the full page with the configuration summary and the tool
// list discovered at startup.
func (h *IndexHandler) Handle(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"config":          h.app.Config,
		"available_tools": toolViews(h.app),
	})
}

func toolViews(app *AppContext) []ToolView {
	var views []ToolView
	if err := copier.Copy(&views, app.Tools); err != nil {
		logger.Warn("[Handler] tool view mapping failed: %v", err)
		return nil
	}
	return views
}
