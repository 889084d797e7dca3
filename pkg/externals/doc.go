// Package externals holds the svn:externals entries of a working copy.
//
// A Store is an ordered list of (location, path) entries kept as a partial
// bijection: no two entries share a path and no two share a location.
// Entries are only ever added or updated in place, never removed, so an
// external that no declaration mentions survives a reconciliation untouched.
//
// The canonical text form is one "<location> <path>" record per line, the
// format accepted by `svn propset svn:externals -F`.
package externals
