package docagent

import (
	"github.com/hibiki-ai/docagent/internal/docagent/config"
)

// Run launches the docagent service with the given configuration and blocks
// until it exits.
func Run(cfg *config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun().Run()
}
