package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/types"
)

// Config is the decoded svnext configuration
type Config struct {
	Scm       ScmConfig        `koanf:"scm"`
	Build     BuildConfig      `koanf:"build"`
	Svn       SvnConfig        `koanf:"svn"`
	Maven     MavenConfig      `koanf:"maven"`
	Externals []ExternalConfig `koanf:"externals"`
}

// ScmConfig names the repository whose externals are managed
type ScmConfig struct {
	URL string `koanf:"url"`
}

// BuildConfig holds scratch locations
type BuildConfig struct {
	Target string `koanf:"target"`
}

// SvnConfig configures the svn client
type SvnConfig struct {
	Binary        string        `koanf:"binary"`
	CommitMessage string        `koanf:"commit_message"`
	Timeout       time.Duration `koanf:"timeout"`
}

// MavenConfig configures dependency metadata lookup
type MavenConfig struct {
	Repository        string `koanf:"repository"`
	CacheSize         int    `koanf:"cache_size"`
	TrimTrailingSlash bool   `koanf:"trim_trailing_slash"`
}

// ExternalConfig is one declared external. The dependency is given either
// as a "group:artifact:version[:type]" string or field by field.
type ExternalConfig struct {
	Dependency string `koanf:"dependency"`
	GroupID    string `koanf:"group_id"`
	ArtifactID string `koanf:"artifact_id"`
	Version    string `koanf:"version"`
	Type       string `koanf:"type"`
	Path       string `koanf:"path"`
}

// Coordinate returns the declared dependency, or nil when none is given
func (e ExternalConfig) Coordinate() (*types.Coordinate, error) {
	if e.Dependency != "" {
		c, err := types.ParseCoordinate(e.Dependency)
		if err != nil {
			return nil, err
		}
		return &c, nil
	}
	if e.GroupID == "" && e.ArtifactID == "" && e.Version == "" {
		return nil, nil
	}
	typ := e.Type
	if typ == "" {
		typ = types.DefaultType
	}
	c, err := types.ParseCoordinate(strings.Join([]string{e.GroupID, e.ArtifactID, e.Version, typ}, ":"))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Declarations converts and validates every declared external
func (c *Config) Declarations() ([]types.Declaration, error) {
	if len(c.Externals) == 0 {
		return nil, errors.New(errors.ErrConfigMissing, "Must specify externals list")
	}
	decls := make([]types.Declaration, 0, len(c.Externals))
	for i, e := range c.Externals {
		coord, err := e.Coordinate()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDeclarationInvalid, "externals[%d]: invalid dependency", i).
				WithDetail("index", i)
		}
		if coord == nil {
			return nil, errors.Newf(errors.ErrDeclarationInvalid, "externals[%d]: Must specify external dependency", i).
				WithDetail("index", i).
				WithDetail("path", e.Path)
		}
		if strings.TrimSpace(e.Path) == "" {
			return nil, errors.Newf(errors.ErrDeclarationInvalid, "No path specified for external: %s", coord).
				WithDetail("index", i).
				WithDetail("dependency", coord.String())
		}
		decls = append(decls, types.Declaration{Dependency: coord, Path: strings.TrimSpace(e.Path)})
	}
	return decls, nil
}

// Validate checks the settings a run cannot start without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Scm.URL) == "" {
		return errors.New(errors.ErrConfigInvalid, "scm.url is required")
	}
	if c.Svn.Timeout < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "svn.timeout must not be negative, got %s", c.Svn.Timeout)
	}
	_, err := c.Declarations()
	return err
}
