package docagent

import (
	"context"
	"os"

	"github.com/hibiki-ai/docagent/internal/docagent/config"
	"github.com/hibiki-ai/docagent/internal/docagent/handler"
	"github.com/hibiki-ai/docagent/internal/docagent/service/agent"
	"github.com/hibiki-ai/docagent/internal/docagent/service/mcp"
	"github.com/hibiki-ai/docagent/internal/pkg/logger"
	genericapiserver "github.com/hibiki-ai/docagent/internal/pkg/server"
)

type apiServer struct {
	genericAPIServer *genericapiserver.GenericAPIServer

	connector *mcp.Connector
	app       *handler.AppContext
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	genericConfig, err := buildGenericConfig(cfg)
	if err != nil {
		return nil, err
	}

	genericServer, err := genericConfig.Complete().New()
	if err != nil {
		return nil, err
	}
	handler.RegisterTemplates(genericServer.Engine)

	connector, app := initAgent(context.Background(), cfg)

	server := &apiServer{
		genericAPIServer: genericServer,
		connector:        connector,
		app:              app,
	}

	return server, nil
}

// initAgent connects the tool server and builds the assistant. Failures are
// logged and absorbed: the service still comes up, with chat reporting the
// agent as unavailable.
func initAgent(ctx context.Context, cfg *config.Config) (*mcp.Connector, *handler.AppContext) {
	app := &handler.AppContext{
		Config: handler.NewConfigView(cfg),
	}

	connector := mcp.NewConnector(&mcp.Config{
		Command: cfg.MCPOptions.Command,
		Package: cfg.MCPOptions.Package,
		Env:     os.Environ(),
	})
	if err := connector.Connect(ctx); err != nil {
		logger.Error("[DocAgent] tool server connection failed: %v", err)
		return connector, app
	}
	logger.Info("[DocAgent] tool server %s connected, %d tools discovered",
		cfg.MCPOptions.Package, len(connector.Descriptors()))

	chatModel, err := agent.NewChatModel(ctx, cfg.AzureOptions)
	if err != nil {
		logger.Error("[DocAgent] chat model initialization failed: %v", err)
		return connector, app
	}

	assistant, err := agent.NewAssistant(ctx, chatModel, connector.Tools())
	if err != nil {
		logger.Error("[DocAgent] assistant initialization failed: %v", err)
		return connector, app
	}

	app.Assistant = assistant
	app.Tools = connector.Descriptors()
	return connector, app
}

func (s *apiServer) PrepareRun() preparedAPIServer {
	initRouter(s.genericAPIServer.Engine, &routerDeps{app: s.app})

	s.genericAPIServer.AddCloseHook(func() {
		if s.connector != nil {
			s.connector.Close()
		}
	})

	return preparedAPIServer{s}
}

func (s preparedAPIServer) Run() error {
	return s.genericAPIServer.Run()
}

func buildGenericConfig(cfg *config.Config) (genericConfig *genericapiserver.Config, lastErr error) {
	genericConfig = genericapiserver.NewConfig()
	if lastErr = cfg.ServingOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	return
}
