// Package reconcile merges resolved external declarations into an
// externals store.
//
// Reconciliation is all-or-nothing: every declaration is resolved before
// the store is touched, so a single bad declaration leaves the store
// exactly as it was. Entries that no declaration mentions are kept.
package reconcile
