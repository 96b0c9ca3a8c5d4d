package handler

import (
	"github.com/jaekyeom/go-bulletin-board/internal/config"
	"github.com/jaekyeom/go-bulletin-board/internal/handler/http"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
