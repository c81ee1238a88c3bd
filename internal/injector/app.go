package injector

import (
	"github.com/zeusync/gmath/internal/observability/log"
	"github.com/zeusync/gmath/internal/scenario"
)

// App holds the long lived objects the CLI needs.
type App struct {
	Logger *log.Logger
	Runner *scenario.Runner
}
