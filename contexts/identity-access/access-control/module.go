package accesscontrol

import (
	"log/slog"

	httpadapter "fieldops/contexts/identity-access/access-control/adapters/http"
	"fieldops/contexts/identity-access/access-control/adapters/memory"
	"fieldops/contexts/identity-access/access-control/application"
	"fieldops/contexts/identity-access/access-control/ports"
)

// Module is the access-control composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Memberships ports.MembershipRepository
	Projects    ports.ProjectCatalog
	Directory   ports.UserDirectory
	Clock       ports.Clock
	Logger      *slog.Logger
}

// NewModule wires the access-control service and transport handler using
// explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Memberships: deps.Memberships,
		Projects:    deps.Projects,
		Directory:   deps.Directory,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters. A non-nil catalog shares project facts with project-service;
// when nil the module's own store answers catalog lookups (seed it with
// SeedProject / SeedProjectMember).
func NewInMemoryModule(catalog ports.ProjectCatalog, logger *slog.Logger) Module {
	store := memory.NewStore()
	if catalog == nil {
		catalog = store
	}
	module := NewModule(Dependencies{
		Memberships: store,
		Projects:    catalog,
		Directory:   store,
		Clock:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
