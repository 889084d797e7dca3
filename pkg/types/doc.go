// Package types defines the value objects shared across svnext: Maven
// coordinates, external declarations and the project metadata a
// dependency publishes about its source control.
package types
