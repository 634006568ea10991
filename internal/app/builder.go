package app

import (
	"go.trai.ch/pakt/internal/core/ports"
)

// Components contains all the initialized application components. The struct
// provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
