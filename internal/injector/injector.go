//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/gmath/internal/observability/log"
	"github.com/zeusync/gmath/internal/scenario"
)

func InitializeApp(level log.Level) *App {
	wire.Build(
		log.New,
		wire.Bind(new(log.Log), new(*log.Logger)),
		scenario.NewRunner,
		wire.Struct(new(App), "*"),
	)
	return nil
}
