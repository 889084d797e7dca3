package workflow

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/externals"
	"github.com/arthur-debert/svnext/pkg/filesystem"
	"github.com/arthur-debert/svnext/pkg/logging"
	"github.com/arthur-debert/svnext/pkg/paths"
	"github.com/arthur-debert/svnext/pkg/reconcile"
	"github.com/arthur-debert/svnext/pkg/svn"
	"github.com/arthur-debert/svnext/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultCommitMessage is used when the run context does not set one
const DefaultCommitMessage = "[svnext] update svn:externals property"

// RunContext carries everything a single run needs
type RunContext struct {
	// ScmURL is the repository location whose externals are rewritten
	ScmURL string
	// WorkDir receives the empty-depth checkout
	WorkDir string
	// TargetDir receives the rendered svn.externals file
	TargetDir string
	// Declarations are applied in order
	Declarations  []types.Declaration
	CommitMessage string
	// DryRun writes the externals file but does not set or commit it
	DryRun bool
}

// ExternalsFile returns the path the rendered property is written to
func (rc RunContext) ExternalsFile() string {
	return filepath.Join(rc.TargetDir, paths.ExternalsFileName)
}

// Result summarizes a run
type Result struct {
	Before        *externals.Store
	After         *externals.Store
	Report        *reconcile.Report
	ExternalsFile string
	// Changed is false when the reconciled property equals the checked out one
	Changed   bool
	Committed bool
}

// Driver sequences the svn commands around a reconciliation
type Driver struct {
	svn        *svn.Client
	fs         filesystem.FS
	reconciler *reconcile.Reconciler
	logger     zerolog.Logger
}

// New creates a Driver
func New(client *svn.Client, fs filesystem.FS, reconciler *reconcile.Reconciler) *Driver {
	return &Driver{
		svn:        client,
		fs:         fs,
		reconciler: reconciler,
		logger:     logging.GetLogger("workflow"),
	}
}

// Show checks out rc.ScmURL and returns its current externals
func (d *Driver) Show(ctx context.Context, rc RunContext) (*externals.Store, error) {
	if err := validate(rc); err != nil {
		return nil, err
	}
	if err := d.checkout(ctx, rc); err != nil {
		return nil, err
	}
	return d.load(ctx, rc)
}

// Run performs the full update described by rc
func (d *Driver) Run(ctx context.Context, rc RunContext) (*Result, error) {
	if err := validate(rc); err != nil {
		return nil, err
	}
	if len(rc.Declarations) == 0 {
		return nil, errors.New(errors.ErrConfigMissing, "Must specify externals list")
	}
	if rc.CommitMessage == "" {
		rc.CommitMessage = DefaultCommitMessage
	}

	logger := d.logger.With().Str("url", rc.ScmURL).Str("workDir", rc.WorkDir).Logger()
	done := logging.LogOperationStart(logger, "update-externals")
	defer done()

	if err := d.checkout(ctx, rc); err != nil {
		return nil, err
	}

	store, err := d.load(ctx, rc)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Before:        store.Clone(),
		ExternalsFile: rc.ExternalsFile(),
	}

	report, err := d.reconciler.Reconcile(ctx, store, rc.Declarations)
	if err != nil {
		return nil, err
	}
	result.After = store
	result.Report = report
	result.Changed = !result.Before.Equal(store)

	if err := d.write(rc.ExternalsFile(), store); err != nil {
		return nil, err
	}

	if rc.DryRun {
		logger.Info().Str("file", rc.ExternalsFile()).Msg("Dry run, not setting svn:externals")
		return result, nil
	}
	if !result.Changed {
		logger.Info().Msg("svn:externals already up to date, nothing to commit")
		return result, nil
	}

	if err := d.svn.PropSetExternals(ctx, rc.WorkDir, rc.ExternalsFile()); err != nil {
		return nil, err
	}
	if err := d.svn.Commit(ctx, rc.WorkDir, rc.CommitMessage); err != nil {
		return nil, err
	}
	result.Committed = true

	logger.Info().
		Int("added", report.Count(reconcile.ActionAdded)).
		Int("updated", report.Count(reconcile.ActionUpdated)).
		Msg("Committed svn:externals")

	return result, nil
}

func validate(rc RunContext) error {
	if strings.TrimSpace(rc.ScmURL) == "" {
		return errors.New(errors.ErrConfigInvalid, "scm url is required")
	}
	if rc.WorkDir == "" || rc.TargetDir == "" {
		return errors.New(errors.ErrConfigInvalid, "work and target directories are required")
	}
	return nil
}

func (d *Driver) checkout(ctx context.Context, rc RunContext) error {
	if err := d.fs.MkdirAll(rc.WorkDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create checkout directory %s", rc.WorkDir)
	}
	return d.svn.Checkout(ctx, rc.WorkDir, rc.ScmURL)
}

func (d *Driver) load(ctx context.Context, rc RunContext) (*externals.Store, error) {
	lines, err := d.svn.PropGetExternals(ctx, rc.WorkDir)
	if err != nil {
		return nil, err
	}
	store, err := externals.ParseLines(lines)
	if err != nil {
		return nil, err
	}
	d.logger.Debug().Int("entries", store.Len()).Msg("Loaded svn:externals")
	return store, nil
}

func (d *Driver) write(file string, store *externals.Store) error {
	if err := d.fs.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(file)).
			WithDetail("file", file)
	}
	if err := d.fs.WriteFile(file, []byte(store.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", file).
			WithDetail("file", file)
	}
	d.logger.Debug().Str("file", file).Int("entries", store.Len()).Msg("Wrote externals file")
	return nil
}
