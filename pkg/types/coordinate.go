package types

import (
	"fmt"
	"path"
	"strings"
)

// DefaultType is the packaging type assumed when a coordinate omits it
const DefaultType = "jar"

// Coordinate identifies a Maven artifact
type Coordinate struct {
	GroupID    string `koanf:"group_id" yaml:"groupId" json:"groupId"`
	ArtifactID string `koanf:"artifact_id" yaml:"artifactId" json:"artifactId"`
	Version    string `koanf:"version" yaml:"version" json:"version"`
	Type       string `koanf:"type" yaml:"type,omitempty" json:"type,omitempty"`
}

// ParseCoordinate parses "group:artifact:version[:type]"
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: want group:artifact:version[:type]", s)
	}
	for i, p := range parts {
		if p == "" {
			return Coordinate{}, fmt.Errorf("invalid coordinate %q: empty field %d", s, i+1)
		}
	}
	c := Coordinate{
		GroupID:    parts[0],
		ArtifactID: parts[1],
		Version:    parts[2],
		Type:       DefaultType,
	}
	if len(parts) == 4 {
		c.Type = parts[3]
	}
	return c, nil
}

// String renders group:artifact:version:type
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version + ":" + c.Type
}

// Key identifies the artifact's project metadata regardless of packaging type
func (c Coordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// PomPath returns the repository-relative path of the artifact's POM,
// e.g. org/example/lib/1.0/lib-1.0.pom
func (c Coordinate) PomPath() string {
	return path.Join(
		strings.ReplaceAll(c.GroupID, ".", "/"),
		c.ArtifactID,
		c.Version,
		c.ArtifactID+"-"+c.Version+".pom",
	)
}
