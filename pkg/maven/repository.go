package maven

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/logging"
	"github.com/arthur-debert/svnext/pkg/types"
	"github.com/beevik/etree"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultCacheSize is the number of parsed POMs kept in memory
	DefaultCacheSize = 256

	// maxParentDepth bounds <parent> traversal
	maxParentDepth = 10
)

// LocalRepository serves project metadata from a Maven repository on disk
type LocalRepository struct {
	root   string
	cache  *lru.Cache[string, *pom]
	logger zerolog.Logger
}

// NewLocalRepository opens the repository rooted at root. cacheSize <= 0
// uses DefaultCacheSize.
func NewLocalRepository(root string, cacheSize int) (*LocalRepository, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *pom](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create POM cache")
	}
	return &LocalRepository{
		root:   root,
		cache:  cache,
		logger: logging.GetLogger("maven.repository"),
	}, nil
}

// Root returns the repository directory
func (r *LocalRepository) Root() string {
	return r.root
}

// Project returns the metadata of c, including its effective SCM section
func (r *LocalRepository) Project(ctx context.Context, c types.Coordinate) (*types.Project, error) {
	p, err := r.load(ctx, c)
	if err != nil {
		return nil, err
	}
	scm, err := r.resolveScm(ctx, p, 0)
	if err != nil {
		return nil, err
	}
	return &types.Project{
		Coordinate: c,
		Name:       p.name,
		Scm:        scm,
	}, nil
}

func (r *LocalRepository) resolveScm(ctx context.Context, p *pom, depth int) (*types.Scm, error) {
	own := p.ownScm()
	if complete(own) || p.parent == nil {
		return own, nil
	}
	if depth >= maxParentDepth {
		r.logger.Warn().
			Str("project", p.coord.Key()).
			Int("depth", depth).
			Msg("Parent chain too deep, not inheriting SCM")
		return own, nil
	}

	parent, err := r.load(ctx, *p.parent)
	if err != nil {
		if own != nil && own.URL != "" {
			r.logger.Debug().Err(err).Str("parent", p.parent.Key()).Msg("Parent POM unavailable, keeping own SCM")
			return own, nil
		}
		return nil, err
	}
	parentScm, err := r.resolveScm(ctx, parent, depth+1)
	if err != nil {
		return nil, err
	}
	return inherit(own, parentScm, p.coord.ArtifactID), nil
}

func (r *LocalRepository) load(ctx context.Context, c types.Coordinate) (*pom, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrMetadataLookup, "metadata lookup cancelled")
	}

	key := c.Key()
	if p, ok := r.cache.Get(key); ok {
		return p, nil
	}

	path := filepath.Join(r.root, filepath.FromSlash(c.PomPath()))
	r.logger.Debug().Str("coordinate", key).Str("pom", path).Msg("Reading POM")

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMetadataLookup, "no POM for %s in %s", key, r.root).
			WithDetail("dependency", key).
			WithDetail("pom", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMetadataLookup, "failed to parse POM for %s", key).
			WithDetail("pom", path)
	}
	p, ok := parsePom(doc)
	if !ok {
		return nil, errors.Newf(errors.ErrMetadataLookup, "%s has no <project> element", path).
			WithDetail("pom", path)
	}

	r.cache.Add(key, p)
	return p, nil
}
