package maven

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/svnext/pkg/types"
	"github.com/beevik/etree"
)

// pom is the subset of a POM svnext reads
type pom struct {
	coord      types.Coordinate
	name       string
	parent     *types.Coordinate
	properties map[string]string
	scm        *types.Scm
}

// parsePom reads the project element of doc. Group and version fall back
// to the <parent> element when the project omits them.
func parsePom(doc *etree.Document) (*pom, bool) {
	root := doc.SelectElement("project")
	if root == nil {
		return nil, false
	}

	p := &pom{properties: make(map[string]string)}

	if parent := root.SelectElement("parent"); parent != nil {
		p.parent = &types.Coordinate{
			GroupID:    childText(parent, "groupId"),
			ArtifactID: childText(parent, "artifactId"),
			Version:    childText(parent, "version"),
			Type:       "pom",
		}
	}

	p.coord = types.Coordinate{
		GroupID:    childText(root, "groupId"),
		ArtifactID: childText(root, "artifactId"),
		Version:    childText(root, "version"),
		Type:       childText(root, "packaging"),
	}
	if p.parent != nil {
		if p.coord.GroupID == "" {
			p.coord.GroupID = p.parent.GroupID
		}
		if p.coord.Version == "" {
			p.coord.Version = p.parent.Version
		}
	}
	if p.coord.Type == "" {
		p.coord.Type = types.DefaultType
	}
	p.name = childText(root, "name")

	if props := root.SelectElement("properties"); props != nil {
		for _, e := range props.ChildElements() {
			p.properties[e.Tag] = strings.TrimSpace(e.Text())
		}
	}

	if scm := root.SelectElement("scm"); scm != nil {
		p.scm = &types.Scm{
			URL:                 childText(scm, "url"),
			Connection:          childText(scm, "connection"),
			DeveloperConnection: childText(scm, "developerConnection"),
			Tag:                 childText(scm, "tag"),
		}
	}

	return p, true
}

func childText(e *etree.Element, tag string) string {
	c := e.SelectElement(tag)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text())
}

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// interpolate expands ${...} references against the project's coordinates
// and properties. Unknown references are left as written.
func (p *pom) interpolate(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		key := m[2 : len(m)-1]
		switch key {
		case "project.groupId", "pom.groupId":
			return p.coord.GroupID
		case "project.artifactId", "pom.artifactId":
			return p.coord.ArtifactID
		case "project.version", "pom.version", "version":
			return p.coord.Version
		}
		if p.parent != nil {
			switch key {
			case "project.parent.groupId":
				return p.parent.GroupID
			case "project.parent.artifactId":
				return p.parent.ArtifactID
			case "project.parent.version":
				return p.parent.Version
			}
		}
		if v, ok := p.properties[key]; ok {
			return v
		}
		return m
	})
}

// ownScm returns the project's own scm section with references expanded
func (p *pom) ownScm() *types.Scm {
	if p.scm == nil {
		return nil
	}
	return &types.Scm{
		URL:                 p.interpolate(p.scm.URL),
		Connection:          p.interpolate(p.scm.Connection),
		DeveloperConnection: p.interpolate(p.scm.DeveloperConnection),
		Tag:                 p.interpolate(p.scm.Tag),
	}
}

// inherit fills the empty fields of own from the parent's scm, appending
// the child's artifactId to inherited locations.
func inherit(own, parent *types.Scm, artifactID string) *types.Scm {
	if parent == nil {
		return own
	}
	if own == nil {
		own = &types.Scm{}
	}
	if own.URL == "" {
		own.URL = appendPath(parent.URL, artifactID)
	}
	if own.Connection == "" {
		own.Connection = appendPath(parent.Connection, artifactID)
	}
	if own.DeveloperConnection == "" {
		own.DeveloperConnection = appendPath(parent.DeveloperConnection, artifactID)
	}
	if own.Tag == "" {
		own.Tag = parent.Tag
	}
	return own
}

func appendPath(base, segment string) string {
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + segment
}

// complete reports whether every location of scm is set
func complete(scm *types.Scm) bool {
	return scm != nil && scm.URL != "" && scm.Connection != "" && scm.DeveloperConnection != ""
}
