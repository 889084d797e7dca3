// Package maven reads project metadata from a local Maven repository.
//
// LocalRepository locates <group>/<artifact>/<version>/<artifact>-<version>.pom,
// reads the <scm> section and follows <parent> links when a project does not
// declare one itself. Inherited SCM locations get the child's artifactId
// appended, the way Maven computes them. Parsed POMs are kept in an LRU cache.
package maven
