// Package materialservice manages the tenant master-material catalog,
// per-project materials, and the per-material stock ledger.
//
// Stock levels are never stored: every material balance is recomputed from
// its append-only in/out entry history through the shared ledger engine.
package materialservice
