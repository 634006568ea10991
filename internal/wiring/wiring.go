// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pakt/internal/adapters/config"
	_ "go.trai.ch/pakt/internal/adapters/logger"
	_ "go.trai.ch/pakt/internal/adapters/packager"
	_ "go.trai.ch/pakt/internal/adapters/source"
	// Register UI nodes.
	_ "go.trai.ch/pakt/internal/ui/status"
	// Register app nodes.
	_ "go.trai.ch/pakt/internal/app"
)
