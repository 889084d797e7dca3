package reconcile

import (
	"context"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/externals"
	"github.com/arthur-debert/svnext/pkg/logging"
	"github.com/arthur-debert/svnext/pkg/resolver"
	"github.com/arthur-debert/svnext/pkg/types"
	"github.com/rs/zerolog"
)

// Action describes what reconciliation did to one entry
type Action string

const (
	ActionAdded     Action = "added"
	ActionUpdated   Action = "updated"
	ActionUnchanged Action = "unchanged"
)

// Change is the outcome of one declaration
type Change struct {
	Dependency       types.Coordinate
	Path             string
	Location         string
	PreviousLocation string
	PreviousPath     string
	Action           Action
}

// Report lists the changes of a reconciliation in declaration order
type Report struct {
	Changes []Change
}

// Changed reports whether any entry was added or updated
func (r *Report) Changed() bool {
	for _, c := range r.Changes {
		if c.Action != ActionUnchanged {
			return true
		}
	}
	return false
}

// Count returns the number of changes with the given action
func (r *Report) Count(a Action) int {
	n := 0
	for _, c := range r.Changes {
		if c.Action == a {
			n++
		}
	}
	return n
}

// Resolver resolves one declaration
type Resolver interface {
	Resolve(ctx context.Context, d types.Declaration) (resolver.Mapping, error)
}

// Reconciler applies declarations to a store
type Reconciler struct {
	resolver Resolver
	logger   zerolog.Logger
}

// New creates a Reconciler using r to resolve declarations
func New(r Resolver) *Reconciler {
	return &Reconciler{
		resolver: r,
		logger:   logging.GetLogger("reconcile"),
	}
}

// Reconcile resolves every declaration in order and then upserts the
// resulting mappings into store. On error the store is not modified.
func (r *Reconciler) Reconcile(ctx context.Context, store *externals.Store, decls []types.Declaration) (*Report, error) {
	if len(decls) == 0 {
		err := errors.New(errors.ErrConfigMissing, "Must specify externals list")
		r.logger.Error().Msg(err.Message)
		return nil, err
	}

	mappings := make([]resolver.Mapping, 0, len(decls))
	for _, d := range decls {
		m, err := r.resolver.Resolve(ctx, d)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}

	report := &Report{Changes: make([]Change, 0, len(mappings))}
	for _, m := range mappings {
		change := Change{
			Dependency: m.Dependency,
			Path:       m.Path,
			Location:   m.Location,
		}
		if prev := store.Match(m.Location, m.Path); prev != nil {
			change.PreviousLocation = prev.Location
			change.PreviousPath = prev.Path
		}

		r.logger.Info().
			Str("dependency", m.Dependency.String()).
			Str("location", m.Location).
			Str("path", m.Path).
			Msg("Setting svn:externals entry")

		_, created := store.Upsert(m.Location, m.Path)
		switch {
		case created:
			change.Action = ActionAdded
		case change.PreviousLocation == m.Location && change.PreviousPath == m.Path:
			change.Action = ActionUnchanged
		default:
			change.Action = ActionUpdated
		}
		report.Changes = append(report.Changes, change)
	}

	r.logger.Debug().
		Int("added", report.Count(ActionAdded)).
		Int("updated", report.Count(ActionUpdated)).
		Int("unchanged", report.Count(ActionUnchanged)).
		Int("entries", store.Len()).
		Msg("Reconciliation complete")

	return report, nil
}
