//go:build wireinject
// +build wireinject

package di

import (
	"MLService/pkg/config"
	"MLService/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation in wire_gen.go.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideCatalog,

		ProvideGaussian,
		ProvideGenerator,
		ProvideValidator,

		ProvideEnvelopeWriter,
		ProvideForecastHandler,
		ProvideHealthHandler,
		ProvideRouter,

		ProvideApp,
	)
	return &server.App{}, nil
}
