package services

import (
	"log/slog"

	"github.com/curaious/linkfinder/internal/config"
	"github.com/curaious/linkfinder/internal/script"
	"github.com/curaious/linkfinder/internal/services/links"
)

type Services struct {
	Links *links.LinksService
}

func NewServices(conf *config.Config) *Services {
	runner := script.NewRunner(script.Config{
		Interpreter: conf.SCRIPT_INTERPRETER,
		Path:        conf.SCRIPT_PATH,
		Workdir:     conf.SCRIPT_WORKDIR,
		Timeout:     conf.SCRIPT_TIMEOUT,
	})

	slog.Info("Link extraction script configured",
		slog.String("interpreter", conf.SCRIPT_INTERPRETER),
		slog.String("path", conf.SCRIPT_PATH),
		slog.Duration("timeout", conf.SCRIPT_TIMEOUT))

	return &Services{
		Links: links.NewLinksService(runner),
	}
}
