// Package accesscontrol implements tenant and project authorization for the
// FieldOps backend.
//
// Layering:
//   - domain: membership entities, the role/permission table, sentinel errors
//   - application: tenant role resolution (with the first-admin bootstrap),
//     project access resolution, tenant member administration
//   - ports: stable boundaries for persistence and the user directory
//   - adapters: concrete memory, postgres, and HTTP implementations
//   - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
//   - Project rows are owned by project-service; this module only reads the
//     (id, tenant_id) pair and project membership roles through its catalog
//     port.
//   - Authorization decisions are never cached; every check goes back to the
//     store.
package accesscontrol
