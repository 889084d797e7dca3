package svnext

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/filesystem"
	"github.com/arthur-debert/svnext/pkg/svn"
	"github.com/arthur-debert/svnext/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir    string
	config string
	target string
	runner *testutil.MockRunner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	testutil.IsolateEnv(t)

	repo := testutil.NewRepoBuilder(t)
	repo.SimplePom("org.example:lib-a:1.0", "https://svn.example.com/lib-a/tags/1.0")
	repo.SimplePom("org.example:lib-b:2.0", "https://svn.example.com/lib-b/tags/2.0/")

	dir := t.TempDir()
	f := &fixture{
		dir:    dir,
		config: filepath.Join(dir, "svnext.toml"),
		target: filepath.Join(dir, "target"),
		runner: testutil.NewMockRunner(),
	}
	content := fmt.Sprintf(`
[scm]
url = "https://svn.example.com/app/trunk"

[build]
target = %q

[maven]
repository = %q

[[externals]]
dependency = "org.example:lib-a:1.0"
path = "libs/a"

[[externals]]
dependency = "org.example:lib-b:2.0"
path = "libs/b"
`, f.target, repo.Root)
	require.NoError(t, os.WriteFile(f.config, []byte(content), 0644))

	prevRunner := newRunner
	newRunner = func() svn.Runner { return f.runner }
	t.Cleanup(func() { newRunner = prevRunner })

	return f
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", f.config}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUpdate_CommitsReconciledExternals(t *testing.T) {
	f := newFixture(t)
	f.runner.Respond("propget", "https://svn.example.com/old/a libs/a\nhttps://svn.example.com/keep keep\n")

	_, err := f.run(t, "update", "-o", "json")
	require.NoError(t, err)

	assert.Equal(t, []string{"checkout", "propget", "propset", "commit"}, f.runner.Subcommands())

	data, err := os.ReadFile(filepath.Join(f.target, "svn.externals"))
	require.NoError(t, err)
	assert.Equal(t,
		"https://svn.example.com/lib-a/tags/1.0 libs/a\n"+
			"https://svn.example.com/keep keep\n"+
			"https://svn.example.com/lib-b/tags/2.0/ libs/b\n",
		string(data))

	calls := f.runner.Calls()
	assert.Equal(t, filepath.Join(f.target, "checkout"), calls[0].Dir)
	assert.Contains(t, calls[0].Args, "https://svn.example.com/app/trunk")
	assert.Contains(t, calls[3].Args, "[svnext] update svn:externals property")
}

func TestUpdate_PublishedLocationsAlreadyPresent(t *testing.T) {
	f := newFixture(t)
	f.runner.Respond("propget",
		"https://svn.example.com/lib-a/tags/1.0 libs/a\n"+
			"https://svn.example.com/lib-b/tags/2.0/ libs/b\n")

	out, err := f.run(t, "update")
	require.NoError(t, err)

	assert.Equal(t, []string{"checkout", "propget"}, f.runner.Subcommands(), "nothing to commit")
	assert.Contains(t, out, "already up to date")
}

func TestRender_TrimTrailingSlashOptIn(t *testing.T) {
	f := newFixture(t)
	t.Setenv("SVNEXT_MAVEN_TRIM_TRAILING_SLASH", "true")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--config", f.config, "render"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "https://svn.example.com/lib-b/tags/2.0 libs/b\n")
}

func TestUpdate_AliasAndFlagOverrides(t *testing.T) {
	f := newFixture(t)
	other := filepath.Join(f.dir, "elsewhere")

	_, err := f.run(t, "update-externals",
		"--scm-url", "https://svn.example.com/other",
		"--target", other,
		"-m", "bump externals")
	require.NoError(t, err)

	calls := f.runner.Calls()
	require.Len(t, calls, 4)
	assert.Contains(t, calls[0].Args, "https://svn.example.com/other")
	assert.Equal(t, filepath.Join(other, "checkout"), calls[0].Dir)
	assert.Contains(t, calls[3].Args, "bump externals")
	assert.FileExists(t, filepath.Join(other, "svn.externals"))
}

func TestUpdate_DryRun(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "update", "--dry-run")
	require.NoError(t, err)

	assert.Equal(t, []string{"checkout", "propget"}, f.runner.Subcommands())
	assert.FileExists(t, filepath.Join(f.target, "svn.externals"))
	assert.Contains(t, out, "Dry run")
}

func TestUpdate_MissingScmURL(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "update", "--scm-url", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.Empty(t, f.runner.Calls(), "no svn command may run before validation")
}

func TestUpdate_ToolFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.Fail("checkout", "svn: E170013: Unable to connect")

	_, err := f.run(t, "update")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolInvocation))
	assert.Equal(t, []string{"checkout"}, f.runner.Subcommands())
}

func TestShow(t *testing.T) {
	f := newFixture(t)
	f.runner.Respond("propget", "https://svn.example.com/keep keep\n")

	out, err := f.run(t, "show", "-o", "yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"checkout", "propget"}, f.runner.Subcommands())
	assert.Contains(t, out, "location: https://svn.example.com/keep")
	assert.Contains(t, out, "path: keep")
}

func TestShow_BadOutputFormat(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "show", "-o", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, f.runner.Calls())
}

func TestRender_FromFile(t *testing.T) {
	f := newFixture(t)
	from := filepath.Join(f.dir, "current.externals")
	require.NoError(t, os.WriteFile(from, []byte("https://svn.example.com/keep keep\n"), 0644))

	out, err := f.run(t, "render", "--from", from)
	require.NoError(t, err)

	assert.Empty(t, f.runner.Calls())
	assert.Equal(t,
		"https://svn.example.com/keep keep\n"+
			"https://svn.example.com/lib-a/tags/1.0 libs/a\n"+
			"https://svn.example.com/lib-b/tags/2.0/ libs/b\n",
		out)
}

func TestRender_FromMemoryFS(t *testing.T) {
	f := newFixture(t)
	memFS := filesystem.NewMemory()
	require.NoError(t, memFS.MkdirAll("/work", 0755))
	require.NoError(t, memFS.WriteFile("/work/current.externals", []byte("https://svn.example.com/keep keep\n"), 0644))
	prevFS := newFS
	newFS = func() filesystem.FS { return memFS }
	t.Cleanup(func() { newFS = prevFS })

	out, err := f.run(t, "render", "--from", "/work/current.externals")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "https://svn.example.com/keep keep\n"))
}

func TestRender_MissingFromFile(t *testing.T) {
	f := newFixture(t)
	prevFS := newFS
	newFS = filesystem.NewMemory
	t.Cleanup(func() { newFS = prevFS })

	_, err := f.run(t, "render", "--from", "/nowhere.externals")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRender_Stdin(t *testing.T) {
	f := newFixture(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("https://svn.example.com/old/a libs/a\n"))
	cmd.SetArgs([]string{"--config", f.config, "render"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t,
		"https://svn.example.com/lib-a/tags/1.0 libs/a\n"+
			"https://svn.example.com/lib-b/tags/2.0/ libs/b\n",
		out.String())
}

func TestGenConfig(t *testing.T) {
	testutil.IsolateEnv(t)
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"genconfig", "--scm-url", "https://svn.example.com/x"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "https://svn.example.com/x")
	assert.Contains(t, out.String(), "[[externals]]")
}

func TestVersion(t *testing.T) {
	testutil.IsolateEnv(t)
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "svnext version dev")
}

func TestNoCommand(t *testing.T) {
	testutil.IsolateEnv(t)
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), MsgErrNoCommand)
}
