package svnext

import (
	"os"

	"github.com/arthur-debert/svnext/pkg/config"
	"github.com/arthur-debert/svnext/pkg/filesystem"
	"github.com/arthur-debert/svnext/pkg/maven"
	"github.com/arthur-debert/svnext/pkg/paths"
	"github.com/arthur-debert/svnext/pkg/reconcile"
	"github.com/arthur-debert/svnext/pkg/resolver"
	"github.com/arthur-debert/svnext/pkg/svn"
	"github.com/arthur-debert/svnext/pkg/workflow"
)

// Replaced in tests
var (
	newRunner = func() svn.Runner { return svn.NewExecRunner() }
	newFS     = filesystem.NewOS
)

// app holds what every command builds from configuration
type app struct {
	cfg   *config.Config
	paths paths.Paths
}

func loadApp(configFile string, overrides map[string]interface{}) (*app, error) {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	cfg, err := config.Load(config.LoadOptions{
		File:      configFile,
		Dir:       dir,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}
	p, err := paths.New(cfg.Build.Target, cfg.Maven.Repository)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, paths: p}, nil
}

func (a *app) reconciler() (*reconcile.Reconciler, error) {
	repo, err := maven.NewLocalRepository(a.paths.MavenRepository(), a.cfg.Maven.CacheSize)
	if err != nil {
		return nil, err
	}
	opts := resolver.DefaultOptions()
	opts.TrimTrailingSlash = a.cfg.Maven.TrimTrailingSlash
	return reconcile.New(resolver.New(repo, opts)), nil
}

func (a *app) driver() (*workflow.Driver, error) {
	rec, err := a.reconciler()
	if err != nil {
		return nil, err
	}
	client := svn.NewClient(newRunner(),
		svn.WithBinary(a.cfg.Svn.Binary),
		svn.WithTimeout(a.cfg.Svn.Timeout),
	)
	return workflow.New(client, newFS(), rec), nil
}

func (a *app) runContext(dryRun bool) workflow.RunContext {
	return workflow.RunContext{
		ScmURL:        a.cfg.Scm.URL,
		WorkDir:       a.paths.CheckoutDir(),
		TargetDir:     a.paths.TargetDir(),
		CommitMessage: a.cfg.Svn.CommitMessage,
		DryRun:        dryRun,
	}
}
