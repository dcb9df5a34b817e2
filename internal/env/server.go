package environment

import (
	"context"
	"log/slog"
	"net/http"

	"recipe-bot/internal/config"
)

type Servers struct {
	HTTP struct {
		Observability *http.Server
		API           *http.Server
	}
}

func newServers(ctx context.Context, cfg config.Config, logger *slog.Logger, clients *Clients, services *Services) *Servers {
	var servers Servers

	apiServer := &http.Server{
		Addr:              cfg.APIServer.ADDR(),
		Handler:           services.APIHandler.Mux(),
		ReadTimeout:       cfg.APIServer.ReadTimeout,
		WriteTimeout:      cfg.APIServer.WriteTimeout,
		IdleTimeout:       cfg.APIServer.IdleTimeout,
		ReadHeaderTimeout: cfg.APIServer.ReadTimeout,
	}

	servers.HTTP.API = apiServer
	servers.HTTP.Observability = initObservability(ctx, logger.WithGroup("http"), clients, cfg)

	return &servers
}
