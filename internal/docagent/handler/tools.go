package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ToolsHandler handles GET /api/tools.
type ToolsHandler struct {
	app *AppContext
}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler(app *AppContext) *ToolsHandler {
	return &ToolsHandler{app: app}
}

// Handle renders the available-tools fragment.
func (h *ToolsHandler) Handle(c *gin.Context) {
	c.HTML(http.StatusOK, "tools_list.html", gin.H{
		"tools": toolViews(h.app),
	})
}
