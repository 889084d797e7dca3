// Package paths provides centralized path handling for svnext.
//
// It resolves the scratch layout used by a reconciliation run and the
// XDG locations used for logs:
//
//   - Target: the build scratch directory (default: ./target)
//   - Checkout: <target>/checkout, the empty-depth working copy
//   - Externals file: <target>/svn.externals, the rendered property
//   - State: $XDG_STATE_HOME/svnext (log file)
//   - Maven repository: ~/.m2/repository unless overridden
//
// # Environment Variables
//
//   - SVNEXT_STATE_DIR: Override the state directory
//   - MAVEN_REPO_LOCAL: Override the local Maven repository
package paths
