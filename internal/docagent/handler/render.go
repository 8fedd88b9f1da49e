package handler

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiki-ai/docagent/internal/docagent/service/agent/entity"
	"github.com/hibiki-ai/docagent/internal/pkg/json"
)

//go:embed templates/*.html
var templatesFS embed.FS

// RegisterTemplates installs the embedded HTML templates on the engine.
func RegisterTemplates(engine *gin.Engine) {
	funcs := template.FuncMap{
		"formatTime": func() string {
			return time.Now().Format("15:04")
		},
		"prettyJSON": func(v interface{}) string {
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return ""
			}
			return string(data)
		},
	}

	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)
}

// ChatResponseView is the payload handed to the chat_response template.
type ChatResponseView struct {
	Content        string
	ToolExecutions []entity.ToolExecution
	Usage          entity.UsageInfo
	HasUsage       bool
}

// ToolView is one tool entry for the index page and the tools fragment.
type ToolView struct {
	Name        string
	Description string
}

// renderError writes the error fragment. Errors are part of the page flow,
// not HTTP failures, so the status stays 200.
func renderError(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "error_response.html", gin.H{
		"error": message,
	})
}
