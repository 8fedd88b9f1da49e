package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hibiki-ai/docagent/internal/docagent/service/agent"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
)

// ChatHandler handles POST /api/chat.
type ChatHandler struct {
	app *AppContext
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(app *AppContext) *ChatHandler {
	return &ChatHandler{app: app}
}

// Handle runs the agent against the submitted message and renders the result
// fragment. Every failure path renders an error fragment; nothing below the
// handler is allowed to take the process down.
func (h *ChatHandler) Handle(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		renderError(c, "Please enter a message.")
		return
	}

	if h.app.Assistant == nil {
		renderError(c, "The agent is not initialized. Please restart the application.")
		return
	}

	result, err := h.app.Assistant.Run(c.Request.Context(), message)
	if err != nil {
		logger.Warn("[Chat] run failed: %v", err)
		renderError(c, agent.UserMessage(err))
		return
	}

	c.HTML(http.StatusOK, "chat_response.html", gin.H{
		"response": ChatResponseView{
			Content:        result.FinalOutput,
			ToolExecutions: agent.ExtractToolExecutions(result),
			Usage:          agent.ExtractUsageInfo(result),
			HasUsage:       agent.HasUsage(result),
		},
	})
}
