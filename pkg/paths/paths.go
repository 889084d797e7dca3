package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/svnext/pkg/errors"
)

// Environment variable names
const (
	// EnvStateDir overrides the XDG state directory for svnext
	EnvStateDir = "SVNEXT_STATE_DIR"

	// EnvMavenRepoLocal overrides the local Maven repository location
	EnvMavenRepoLocal = "MAVEN_REPO_LOCAL"
)

// Scratch layout. These names are part of the on-disk contract with the
// build and must not change between releases.
const (
	// DefaultTargetDir is the default scratch directory
	DefaultTargetDir = "target"

	// AppDirName is the directory name for svnext-specific files
	AppDirName = "svnext"

	// CheckoutDirName is the subdirectory holding the empty-depth checkout
	CheckoutDirName = "checkout"

	// ExternalsFileName is the rendered externals property file
	ExternalsFileName = "svn.externals"

	// LogFileName is the name of the log file
	LogFileName = "svnext.log"
)

// Paths provides the directory layout of a single run
type Paths interface {
	TargetDir() string
	CheckoutDir() string
	ExternalsFile() string
	StateDir() string
	LogFilePath() string
	MavenRepository() string
}

type paths struct {
	targetDir string
	stateDir  string
	mavenRepo string
}

// New creates a Paths rooted at targetDir. An empty targetDir falls back to
// DefaultTargetDir relative to the working directory; mavenRepo may be empty
// to use the environment or ~/.m2/repository.
func New(targetDir, mavenRepo string) (Paths, error) {
	if targetDir == "" {
		targetDir = DefaultTargetDir
	}
	absTarget, err := filepath.Abs(expandHome(targetDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for target %s", targetDir)
	}

	p := &paths{
		targetDir: absTarget,
		stateDir:  StateDir(),
		mavenRepo: mavenRepo,
	}
	if p.mavenRepo == "" {
		p.mavenRepo = DefaultMavenRepository()
	} else {
		p.mavenRepo = expandHome(p.mavenRepo)
	}
	return p, nil
}

func (p *paths) TargetDir() string { return p.targetDir }

func (p *paths) CheckoutDir() string {
	return filepath.Join(p.targetDir, CheckoutDirName)
}

func (p *paths) ExternalsFile() string {
	return filepath.Join(p.targetDir, ExternalsFileName)
}

func (p *paths) StateDir() string { return p.stateDir }

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

func (p *paths) MavenRepository() string { return p.mavenRepo }

// StateDir returns the svnext state directory, honouring SVNEXT_STATE_DIR
// and XDG_STATE_HOME.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	// xdg caches the environment at init; tests and wrappers may change it
	xdg.Reload()
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the log file location without building a full Paths
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// DefaultMavenRepository returns MAVEN_REPO_LOCAL or ~/.m2/repository
func DefaultMavenRepository() string {
	if repo := os.Getenv(EnvMavenRepoLocal); repo != "" {
		return expandHome(repo)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".m2", "repository")
	}
	return filepath.Join(home, ".m2", "repository")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
