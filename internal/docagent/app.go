package docagent

import (
	"fmt"
	"strings"

	"github.com/hibiki-ai/docagent/internal/docagent/config"
	"github.com/hibiki-ai/docagent/internal/docagent/options"
	"github.com/hibiki-ai/docagent/internal/pkg/app"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
)

const commandDesc = `The docagent service answers AWS documentation questions through a web
page. It runs an LLM agent that consults the AWS documentation tool server
for every answer.

The service starts even when the model or the tool server cannot be
reached; the page then reports the agent as unavailable.`

// NewApp creates the docagent application.
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("docagent service",
		basename,
		app.WithOptions(servingOnly{opts}),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)
	return application
}

// servingOnly restricts startup validation to the listener options. Missing
// model or tool-server configuration degrades the service instead of
// preventing it from starting.
type servingOnly struct {
	*options.Options
}

func (s servingOnly) Validate() []error {
	return s.ServingOptions.Validate()
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		logPath := fmt.Sprintf("%s/%s.log", basename, basename)
		if err := logger.InitLog(logPath); err != nil {
			return err
		}
		defer logger.FlushLog()

		if missing := opts.AzureOptions.Missing(); len(missing) > 0 {
			logger.Warn("[DocAgent] missing configuration: %s", strings.Join(missing, ", "))
		}

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
