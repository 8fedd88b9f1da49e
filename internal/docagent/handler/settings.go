package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles GET /api/settings.
type SettingsHandler struct {
	app *AppContext
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(app *AppContext) *SettingsHandler {
	return &SettingsHandler{app: app}
}

// Handle renders the configuration-presence fragment. Secret values are never
// included, only whether they are set.
func (h *SettingsHandler) Handle(c *gin.Context) {
	c.HTML(http.StatusOK, "settings_modal.html", gin.H{
		"config": h.app.Config,
	})
}
