package attendanceservice

import (
	"log/slog"

	httpadapter "fieldops/contexts/field-operations/attendance-service/adapters/http"
	"fieldops/contexts/field-operations/attendance-service/adapters/memory"
	"fieldops/contexts/field-operations/attendance-service/application"
	"fieldops/contexts/field-operations/attendance-service/ports"
)

// Module is the attendance-service composition root exposed to runtime
// wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository       ports.Repository
	Locator          ports.ProjectLocator
	Clock            ports.Clock
	IDGen            ports.IDGenerator
	Logger           *slog.Logger
	GeofenceDisabled bool
	RadiusMeters     float64
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:             deps.Repository,
		Locator:          deps.Locator,
		Clock:            deps.Clock,
		IDGen:            deps.IDGen,
		Logger:           deps.Logger,
		GeofenceDisabled: deps.GeofenceDisabled,
		RadiusMeters:     deps.RadiusMeters,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters. The locator typically comes from the project-service memory
// store.
func NewInMemoryModule(locator ports.ProjectLocator, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Locator:    locator,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
