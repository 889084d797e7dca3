// Package testutil provides fakes and fixtures for testing svnext components.
//
// Key components:
//   - MockRunner: records svn invocations and answers them without spawning processes
//   - MockMetadataSource: serves project metadata from memory
//   - RepoBuilder: writes POM fixtures into a temporary local Maven repository
//
// Every helper is scoped to a single test; nothing is shared between tests.
package testutil
