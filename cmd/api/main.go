package main

import (
	"log/slog"
	"os"
	"strings"

	attendanceservice "fieldops/contexts/field-operations/attendance-service"
	attendancememory "fieldops/contexts/field-operations/attendance-service/adapters/memory"
	attendancepg "fieldops/contexts/field-operations/attendance-service/adapters/postgres"
	dailyreportservice "fieldops/contexts/field-operations/daily-report-service"
	reportpg "fieldops/contexts/field-operations/daily-report-service/adapters/postgres"
	materialservice "fieldops/contexts/field-operations/material-service"
	materialpg "fieldops/contexts/field-operations/material-service/adapters/postgres"
	projectservice "fieldops/contexts/field-operations/project-service"
	projectpg "fieldops/contexts/field-operations/project-service/adapters/postgres"
	taskservice "fieldops/contexts/field-operations/task-service"
	taskpg "fieldops/contexts/field-operations/task-service/adapters/postgres"
	expensewallet "fieldops/contexts/finance-core/expense-wallet"
	walletpg "fieldops/contexts/finance-core/expense-wallet/adapters/postgres"
	accesscontrol "fieldops/contexts/identity-access/access-control"
	accesspg "fieldops/contexts/identity-access/access-control/adapters/postgres"
	"fieldops/internal/platform/config"
	"fieldops/internal/platform/db"
	"fieldops/internal/platform/httpserver"
	"fieldops/internal/platform/identity"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build module wiring (Postgres when a DSN is configured, in-memory otherwise).
// 3) Start HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err.Error())
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	modules, cleanup, err := buildModules(cfg, logger)
	if err != nil {
		logger.Error("module wiring failed", "error", err.Error())
		os.Exit(1)
	}
	defer cleanup()

	server := httpserver.New(modules, buildVerifier(), logger, ":"+cfg.HTTPPort)
	if err := server.Start(); err != nil {
		logger.Error("http server stopped", "error", err.Error())
		os.Exit(1)
	}
}

func buildModules(cfg config.Config, logger *slog.Logger) (httpserver.Modules, func(), error) {
	if cfg.PostgresDSN == "" {
		logger.Warn("no postgres dsn configured, using in-memory adapters",
			"event", "in_memory_wiring",
			"module", "cmd/api",
			"layer", "platform",
		)
		return buildInMemoryModules(cfg, logger), func() {}, nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return httpserver.Modules{}, nil, err
	}

	projectRepo := projectpg.NewRepository(pg.DB, logger)
	accessRepo := accesspg.NewRepository(pg.DB, logger)
	taskRepo := taskpg.NewRepository(pg.DB)
	materialRepo := materialpg.NewRepository(pg.DB)
	walletRepo := walletpg.NewRepository(pg.DB)
	attendanceRepo := attendancepg.NewRepository(pg.DB)
	reportRepo := reportpg.NewRepository(pg.DB)

	modules := httpserver.Modules{
		Access: accesscontrol.NewModule(accesscontrol.Dependencies{
			Memberships: accessRepo,
			Projects:    accessRepo,
			Directory:   accessRepo,
			Clock:       accesspg.SystemClock{},
			Logger:      logger,
		}),
		Projects: projectservice.NewModule(projectservice.Dependencies{
			Repository: projectRepo,
			Clock:      projectpg.SystemClock{},
			IDGen:      projectpg.UUIDGenerator{},
			Logger:     logger,
		}),
		Tasks: taskservice.NewModule(taskservice.Dependencies{
			Repository: taskRepo,
			Clock:      taskpg.SystemClock{},
			IDGen:      taskpg.UUIDGenerator{},
			Logger:     logger,
		}),
		Materials: materialservice.NewModule(materialservice.Dependencies{
			Repository: materialRepo,
			StockStore: materialRepo,
			Clock:      materialpg.SystemClock{},
			IDGen:      materialpg.UUIDGenerator{},
			Logger:     logger,
		}),
		Wallet: expensewallet.NewModule(expensewallet.Dependencies{
			EntryStore: walletRepo,
			Clock:      walletpg.SystemClock{},
			IDGen:      walletpg.UUIDGenerator{},
			Logger:     logger,
		}),
		Attendance: attendanceservice.NewModule(attendanceservice.Dependencies{
			Repository:       attendanceRepo,
			Locator:          projectRepo,
			Clock:            attendancepg.SystemClock{},
			IDGen:            attendancepg.UUIDGenerator{},
			Logger:           logger,
			GeofenceDisabled: cfg.GeofenceDisabled,
			RadiusMeters:     cfg.GeofenceRadiusMeters,
		}),
		Reports: dailyreportservice.NewModule(dailyreportservice.Dependencies{
			Repository: reportRepo,
			Clock:      reportpg.SystemClock{},
			IDGen:      reportpg.UUIDGenerator{},
			Logger:     logger,
		}),
	}
	return modules, func() { _ = pg.Close() }, nil
}

func buildInMemoryModules(cfg config.Config, logger *slog.Logger) httpserver.Modules {
	projects := projectservice.NewInMemoryModule(logger)

	attendanceStore := attendancememory.NewStore()
	attendance := attendanceservice.NewModule(attendanceservice.Dependencies{
		Repository:       attendanceStore,
		Locator:          projects.Store,
		Clock:            attendanceStore,
		IDGen:            attendanceStore,
		Logger:           logger,
		GeofenceDisabled: cfg.GeofenceDisabled,
		RadiusMeters:     cfg.GeofenceRadiusMeters,
	})
	attendance.Store = attendanceStore

	return httpserver.Modules{
		Access:     accesscontrol.NewInMemoryModule(projects.Store, logger),
		Projects:   projects,
		Tasks:      taskservice.NewInMemoryModule(logger),
		Materials:  materialservice.NewInMemoryModule(logger),
		Wallet:     expensewallet.NewInMemoryModule(logger),
		Attendance: attendance,
		Reports:    dailyreportservice.NewInMemoryModule(logger),
	}
}

// buildVerifier seeds the development token verifier from AUTH_TOKENS, a
// semicolon-separated list of token:user_id:tenant_id[:email] entries.
func buildVerifier() identity.Verifier {
	verifier := identity.NewStaticVerifier()
	for _, raw := range strings.Split(os.Getenv("AUTH_TOKENS"), ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.Split(raw, ":")
		if len(parts) < 3 {
			continue
		}
		claims := identity.Claims{UserID: parts[1], TenantID: parts[2]}
		if len(parts) > 3 {
			claims.Email = parts[3]
		}
		verifier.Seed(parts[0], claims)
	}
	return verifier
}
