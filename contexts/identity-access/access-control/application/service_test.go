package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fieldops/contexts/identity-access/access-control/adapters/memory"
	domainerrors "fieldops/contexts/identity-access/access-control/domain/errors"
	"fieldops/contexts/identity-access/access-control/domain/services"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	service := Service{
		Memberships: store,
		Projects:    store,
		Directory:   store,
		Clock:       store,
	}
	return service, store
}

func TestFirstCallerOfEmptyTenantBecomesOrgAdmin(t *testing.T) {
	service, _ := newTestService()

	role, isMember, err := service.ResolveTenantRole(context.Background(), "tenant-1", "user-a")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !isMember || role != services.TenantRoleOrgAdmin {
		t.Fatalf("expected org_admin membership, got role=%q member=%v", role, isMember)
	}
}

func TestSecondCallerOfBootstrappedTenantIsNotMember(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, _, err := service.ResolveTenantRole(ctx, "tenant-1", "user-a"); err != nil {
		t.Fatalf("bootstrap resolve failed: %v", err)
	}
	role, isMember, err := service.ResolveTenantRole(ctx, "tenant-1", "user-b")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if isMember || role != "" {
		t.Fatalf("expected no membership for second caller, got role=%q member=%v", role, isMember)
	}
}

func TestConcurrentBootstrapProducesSingleOrgAdmin(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			role, _, err := service.ResolveTenantRole(ctx, "tenant-race", "user-a")
			results[i] = role
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("resolve %d failed: %v", i, errs[i])
		}
		if results[i] != services.TenantRoleOrgAdmin {
			t.Fatalf("resolve %d observed role %q", i, results[i])
		}
	}
	members, err := store.ListTenantMembers(ctx, "tenant-race")
	if err != nil {
		t.Fatalf("list members failed: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected exactly one membership row, got %d", len(members))
	}
	if members[0].Role != services.TenantRoleOrgAdmin {
		t.Fatalf("expected org_admin row, got %q", members[0].Role)
	}
}

func TestOrgAdminReachesAnyTenantProjectWithoutMembership(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	if _, _, err := service.ResolveTenantRole(ctx, "tenant-1", "user-a"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	store.SeedProject("project-1", "tenant-1")

	for _, permission := range []string{services.CanManageProject, services.CanManageMembers, services.CanViewExpense} {
		access, err := service.ResolveProjectAccess(ctx, AccessQuery{
			ProjectID:  "project-1",
			TenantID:   "tenant-1",
			UserID:     "user-a",
			Permission: permission,
		})
		if err != nil {
			t.Fatalf("org_admin denied %s: %v", permission, err)
		}
		if access.Role != services.ProjectRoleAdmin {
			t.Fatalf("expected synthesized admin role, got %q", access.Role)
		}
	}
}

func TestViewerDeniedManagePermission(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	if _, _, err := service.ResolveTenantRole(ctx, "tenant-1", "user-a"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	store.SeedProject("project-1", "tenant-1")
	store.SeedProjectMember("project-1", "user-b", services.ProjectRoleViewer)

	_, err := service.ResolveProjectAccess(ctx, AccessQuery{
		ProjectID:  "project-1",
		TenantID:   "tenant-1",
		UserID:     "user-b",
		Permission: services.CanManageTasks,
	})
	if !errors.Is(err, domainerrors.ErrInsufficientPermission) {
		t.Fatalf("expected ErrInsufficientPermission, got %v", err)
	}
}

func TestCrossTenantProjectIndistinguishableFromMissing(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()
	store.SeedProject("project-other", "tenant-2")

	_, errCross := service.ResolveProjectAccess(ctx, AccessQuery{
		ProjectID:  "project-other",
		TenantID:   "tenant-1",
		UserID:     "user-a",
		Permission: services.CanViewProject,
	})
	_, errMissing := service.ResolveProjectAccess(ctx, AccessQuery{
		ProjectID:  "no-such-project",
		TenantID:   "tenant-1",
		UserID:     "user-a",
		Permission: services.CanViewProject,
	})
	if !errors.Is(errCross, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound for cross-tenant project, got %v", errCross)
	}
	if !errors.Is(errMissing, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound for missing project, got %v", errMissing)
	}
}

func TestNonMemberDeniedThenGrantedAfterInvite(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	// Tenant empty: user A bootstraps to org_admin.
	role, _, err := service.ResolveTenantRole(ctx, "tenant-1", "user-a")
	if err != nil || role != services.TenantRoleOrgAdmin {
		t.Fatalf("bootstrap failed: role=%q err=%v", role, err)
	}
	store.SeedProject("project-p", "tenant-1")

	// User B has no membership anywhere.
	_, err = service.ResolveProjectAccess(ctx, AccessQuery{
		ProjectID:  "project-p",
		TenantID:   "tenant-1",
		UserID:     "user-b",
		Permission: services.CanViewProject,
	})
	if !errors.Is(err, domainerrors.ErrNotAProjectMember) {
		t.Fatalf("expected ErrNotAProjectMember, got %v", err)
	}

	// Admin A adds B to the project as member.
	store.SeedProjectMember("project-p", "user-b", services.ProjectRoleMember)

	access, err := service.ResolveProjectAccess(ctx, AccessQuery{
		ProjectID:  "project-p",
		TenantID:   "tenant-1",
		UserID:     "user-b",
		Permission: services.CanViewProject,
	})
	if err != nil {
		t.Fatalf("expected grant after invite, got %v", err)
	}
	if access.Role != services.ProjectRoleMember {
		t.Fatalf("expected member role, got %q", access.Role)
	}
}

func TestEmptyProjectRoleDefaultsToViewer(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	if _, _, err := service.ResolveTenantRole(ctx, "tenant-1", "user-a"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	store.SeedProject("project-1", "tenant-1")
	store.SeedProjectMember("project-1", "user-b", "")

	access, err := service.ResolveProjectAccess(ctx, AccessQuery{
		ProjectID:  "project-1",
		TenantID:   "tenant-1",
		UserID:     "user-b",
		Permission: services.CanViewProject,
	})
	if err != nil {
		t.Fatalf("expected viewer grant, got %v", err)
	}
	if access.Role != services.ProjectRoleViewer {
		t.Fatalf("expected viewer role, got %q", access.Role)
	}
	if _, err := service.ResolveProjectAccess(ctx, AccessQuery{
		ProjectID:  "project-1",
		TenantID:   "tenant-1",
		UserID:     "user-b",
		Permission: services.CanManageTasks,
	}); !errors.Is(err, domainerrors.ErrInsufficientPermission) {
		t.Fatalf("expected ErrInsufficientPermission for defaulted viewer, got %v", err)
	}
}

func TestMemberAdministrationRequiresOrgAdmin(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	if _, _, err := service.ResolveTenantRole(ctx, "tenant-1", "user-a"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if _, err := service.AddMember(ctx, "tenant-1", "user-a", AddMemberInput{
		UserID: "user-b",
		Role:   services.TenantRoleMember,
	}); err != nil {
		t.Fatalf("org_admin add member failed: %v", err)
	}

	// user-b is a plain member: administration is denied.
	if _, err := service.AddMember(ctx, "tenant-1", "user-b", AddMemberInput{
		UserID: "user-c",
		Role:   services.TenantRoleMember,
	}); !errors.Is(err, domainerrors.ErrOrgAdminRequired) {
		t.Fatalf("expected ErrOrgAdminRequired, got %v", err)
	}

	members, err := service.ListMembers(ctx, "tenant-1", "user-a")
	if err != nil {
		t.Fatalf("list members failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	_ = store
}

func TestAddMemberByDirectoryEmail(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	if _, _, err := service.ResolveTenantRole(ctx, "tenant-1", "user-a"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	store.SeedUser("worker@site.example", "user-w")

	member, err := service.AddMember(ctx, "tenant-1", "user-a", AddMemberInput{
		Email: "Worker@Site.example",
		Role:  services.TenantRoleMember,
	})
	if err != nil {
		t.Fatalf("add by email failed: %v", err)
	}
	if member.UserID != "user-w" {
		t.Fatalf("expected directory-resolved user id, got %q", member.UserID)
	}

	if _, err := service.AddMember(ctx, "tenant-1", "user-a", AddMemberInput{
		Email: "nobody@site.example",
		Role:  services.TenantRoleMember,
	}); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddMemberRejectsDuplicatesAndBadRoles(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, _, err := service.ResolveTenantRole(ctx, "tenant-1", "user-a"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if _, err := service.AddMember(ctx, "tenant-1", "user-a", AddMemberInput{
		UserID: "user-b", Role: services.TenantRoleMember,
	}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := service.AddMember(ctx, "tenant-1", "user-a", AddMemberInput{
		UserID: "user-b", Role: services.TenantRoleMember,
	}); !errors.Is(err, domainerrors.ErrMemberAlreadyExists) {
		t.Fatalf("expected ErrMemberAlreadyExists, got %v", err)
	}
	if _, err := service.AddMember(ctx, "tenant-1", "user-a", AddMemberInput{
		UserID: "user-c", Role: "owner",
	}); !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
