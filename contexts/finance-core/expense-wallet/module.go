package expensewallet

import (
	"log/slog"

	httpadapter "fieldops/contexts/finance-core/expense-wallet/adapters/http"
	"fieldops/contexts/finance-core/expense-wallet/adapters/memory"
	"fieldops/contexts/finance-core/expense-wallet/application"
	"fieldops/contexts/finance-core/expense-wallet/ports"
	"fieldops/internal/shared/ledger"
)

// Module is the expense-wallet composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	EntryStore ledger.Store
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Wallet: ledger.Engine{
			Convention: application.WalletConvention,
			Store:      deps.EntryStore,
			Clock:      deps.Clock,
			IDGen:      deps.IDGen,
			Logger:     deps.Logger,
		},
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
		EntryStore: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
