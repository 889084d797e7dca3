package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/svnext/pkg/types"
)

// RepoBuilder writes POM files into a temporary local Maven repository
type RepoBuilder struct {
	t    *testing.T
	Root string
}

// NewRepoBuilder creates an empty repository under t.TempDir()
func NewRepoBuilder(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t, Root: filepath.Join(t.TempDir(), "repository")}
}

// Pom writes body as the POM of coord and returns its path
func (r *RepoBuilder) Pom(coord string, body string) string {
	r.t.Helper()
	c := MustCoordinate(coord)
	path := filepath.Join(r.Root, filepath.FromSlash(c.PomPath()))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		r.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// SimplePom writes a POM for coord with the given <scm><url>. An empty
// scmURL omits the scm section.
func (r *RepoBuilder) SimplePom(coord, scmURL string) string {
	r.t.Helper()
	c := MustCoordinate(coord)
	return r.Pom(coord, PomXML(c, scmURL, ""))
}

// PomXML renders a minimal POM. extra is inserted verbatim inside <project>.
func PomXML(c types.Coordinate, scmURL, extra string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<project xmlns="http://maven.apache.org/POM/4.0.0">` + "\n")
	b.WriteString("  <modelVersion>4.0.0</modelVersion>\n")
	b.WriteString("  <groupId>" + c.GroupID + "</groupId>\n")
	b.WriteString("  <artifactId>" + c.ArtifactID + "</artifactId>\n")
	b.WriteString("  <version>" + c.Version + "</version>\n")
	if scmURL != "" {
		b.WriteString("  <scm>\n    <url>" + scmURL + "</url>\n  </scm>\n")
	}
	b.WriteString(extra)
	b.WriteString("</project>\n")
	return b.String()
}
