// Package resolver turns an external declaration into the location its
// dependency publishes as source control.
package resolver

import (
	"context"
	"strings"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/logging"
	"github.com/arthur-debert/svnext/pkg/types"
	"github.com/rs/zerolog"
)

// MetadataSource looks up the published metadata of a dependency
type MetadataSource interface {
	Project(ctx context.Context, c types.Coordinate) (*types.Project, error)
}

// Mapping is a resolved (location, path) binding ready for the store
type Mapping struct {
	Location   string
	Path       string
	Dependency types.Coordinate
}

// Options tunes resolution
type Options struct {
	// TrimTrailingSlash drops trailing '/' from resolved locations. Off by
	// default: the location is stored exactly as the POM publishes it.
	TrimTrailingSlash bool
}

// DefaultOptions returns the options used by the CLI
func DefaultOptions() Options {
	return Options{}
}

// Resolver validates declarations and resolves their locations
type Resolver struct {
	source MetadataSource
	opts   Options
	logger zerolog.Logger
}

// New creates a Resolver backed by source
func New(source MetadataSource, opts Options) *Resolver {
	return &Resolver{
		source: source,
		opts:   opts,
		logger: logging.GetLogger("resolver"),
	}
}

// Validate checks that a declaration names both a dependency and a path
func Validate(d types.Declaration) error {
	if d.Dependency == nil {
		return errors.New(errors.ErrDeclarationInvalid, "Must specify external dependency").
			WithDetail("path", d.Path)
	}
	if strings.TrimSpace(d.Path) == "" {
		dep := d.Dependency.String()
		return errors.Newf(errors.ErrDeclarationInvalid, "No path specified for external: %s", dep).
			WithDetail("dependency", dep)
	}
	return nil
}

// Resolve validates d and looks up the SCM location of its dependency
func (r *Resolver) Resolve(ctx context.Context, d types.Declaration) (Mapping, error) {
	if err := Validate(d); err != nil {
		r.logger.Error().Err(err).Str("dependency", d.DependencyString()).Msg("Invalid external declaration")
		return Mapping{}, err
	}

	dep := d.Dependency.String()
	logger := r.logger.With().Str("dependency", dep).Str("path", d.Path).Logger()

	project, err := r.source.Project(ctx, *d.Dependency)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to look up dependency metadata")
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			err = errors.Wrapf(err, errors.ErrMetadataLookup, "failed to look up %s", dep)
		}
		return Mapping{}, err
	}

	if project == nil || project.Scm == nil {
		err := errors.Newf(errors.ErrScmMetadataMissing, "No SCM specified for %s", dep).
			WithDetail("dependency", dep)
		logger.Error().Msg(err.Message)
		return Mapping{}, err
	}

	location := strings.TrimSpace(project.Scm.URL)
	if r.opts.TrimTrailingSlash {
		location = strings.TrimRight(location, "/")
	}
	if location == "" {
		err := errors.Newf(errors.ErrScmMetadataMissing, "No SCM URL specified for %s", dep).
			WithDetail("dependency", dep)
		logger.Error().Msg(err.Message)
		return Mapping{}, err
	}

	logger.Info().Str("location", location).Msg("Resolved external")

	return Mapping{
		Location:   location,
		Path:       d.Path,
		Dependency: *d.Dependency,
	}, nil
}
