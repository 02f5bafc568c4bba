package materialservice

import (
	"log/slog"

	httpadapter "fieldops/contexts/field-operations/material-service/adapters/http"
	"fieldops/contexts/field-operations/material-service/adapters/memory"
	"fieldops/contexts/field-operations/material-service/application"
	"fieldops/contexts/field-operations/material-service/ports"
	"fieldops/internal/shared/ledger"
)

// Module is the material-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule. StockStore
// persists the in/out ledger entries behind the shared engine.
type Dependencies struct {
	Repository ports.Repository
	StockStore ledger.Store
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo: deps.Repository,
		Stock: ledger.Engine{
			Convention: application.StockConvention,
			Store:      deps.StockStore,
			Clock:      deps.Clock,
			IDGen:      deps.IDGen,
			Logger:     deps.Logger,
		},
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		StockStore: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
