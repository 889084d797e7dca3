package reconcile_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/externals"
	"github.com/arthur-debert/svnext/pkg/reconcile"
	"github.com/arthur-debert/svnext/pkg/resolver"
	"github.com/arthur-debert/svnext/pkg/testutil"
	"github.com/arthur-debert/svnext/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReconciler(source *testutil.MockMetadataSource) *reconcile.Reconciler {
	return reconcile.New(resolver.New(source, resolver.DefaultOptions()))
}

func TestReconcile_FreshAdd(t *testing.T) {
	source := testutil.NewMockMetadataSource().WithScm("g:a:1.0:jar", "https://scm/example/trunk")
	store := externals.NewStore()

	report, err := newReconciler(source).Reconcile(context.Background(), store,
		[]types.Declaration{testutil.Declare("g:a:1.0:jar", "libs/example")})

	require.NoError(t, err)
	assert.Equal(t, []externals.Entry{{Location: "https://scm/example/trunk", Path: "libs/example"}}, store.Entries())
	require.Len(t, report.Changes, 1)
	assert.Equal(t, reconcile.ActionAdded, report.Changes[0].Action)
	assert.True(t, report.Changed())
}

func TestReconcile_UpdateByPathMatch(t *testing.T) {
	source := testutil.NewMockMetadataSource().WithScm("g:a:1.0", "https://scm/new")
	store := externals.NewStore(externals.Entry{Location: "https://scm/old", Path: "libs/example"})
	before := store.Find("libs/example")

	report, err := newReconciler(source).Reconcile(context.Background(), store,
		[]types.Declaration{testutil.Declare("g:a:1.0", "libs/example")})

	require.NoError(t, err)
	assert.Equal(t, []externals.Entry{{Location: "https://scm/new", Path: "libs/example"}}, store.Entries())
	assert.Same(t, before, store.Find("libs/example"))
	assert.Equal(t, reconcile.ActionUpdated, report.Changes[0].Action)
	assert.Equal(t, "https://scm/old", report.Changes[0].PreviousLocation)
}

func TestReconcile_Idempotent(t *testing.T) {
	source := testutil.NewMockMetadataSource().
		WithScm("g:a:1.0", "https://scm/a").
		WithScm("g:b:1.0", "https://scm/b")
	decls := []types.Declaration{
		testutil.Declare("g:a:1.0", "libs/a"),
		testutil.Declare("g:b:1.0", "libs/b"),
	}
	r := newReconciler(source)
	store := externals.NewStore(externals.Entry{Location: "https://scm/keep", Path: "keep"})

	_, err := r.Reconcile(context.Background(), store, decls)
	require.NoError(t, err)
	once := store.Clone()

	report, err := r.Reconcile(context.Background(), store, decls)
	require.NoError(t, err)

	assert.True(t, once.Equal(store))
	assert.False(t, report.Changed())
	assert.Equal(t, 2, report.Count(reconcile.ActionUnchanged))
}

func TestReconcile_Additive(t *testing.T) {
	source := testutil.NewMockMetadataSource().WithScm("g:a:1.0", "https://scm/a")
	untouched := []externals.Entry{
		{Location: "https://scm/x", Path: "vendor/x"},
		{Location: "https://scm/y", Path: "vendor/y"},
	}
	store := externals.NewStore(untouched...)

	_, err := newReconciler(source).Reconcile(context.Background(), store,
		[]types.Declaration{testutil.Declare("g:a:1.0", "libs/a")})

	require.NoError(t, err)
	entries := store.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, untouched, entries[:2])
}

func TestReconcile_LaterDeclarationOverridesSamePath(t *testing.T) {
	source := testutil.NewMockMetadataSource().
		WithScm("g:a:1.0", "https://scm/a").
		WithScm("g:b:1.0", "https://scm/b")
	store := externals.NewStore()

	report, err := newReconciler(source).Reconcile(context.Background(), store, []types.Declaration{
		testutil.Declare("g:a:1.0", "libs/shared"),
		testutil.Declare("g:b:1.0", "libs/shared"),
	})

	require.NoError(t, err)
	assert.Equal(t, []externals.Entry{{Location: "https://scm/b", Path: "libs/shared"}}, store.Entries())
	assert.Equal(t, reconcile.ActionAdded, report.Changes[0].Action)
	assert.Equal(t, reconcile.ActionUpdated, report.Changes[1].Action)
}

func TestReconcile_MovesExistingLocationToDeclaredPath(t *testing.T) {
	source := testutil.NewMockMetadataSource().WithScm("g:a:1.0", "https://scm/a")
	store := externals.NewStore(
		externals.Entry{Location: "https://scm/keep", Path: "keep"},
		externals.Entry{Location: "https://scm/a", Path: "libs/old"},
	)

	report, err := newReconciler(source).Reconcile(context.Background(), store,
		[]types.Declaration{testutil.Declare("g:a:1.0", "libs/new")})

	require.NoError(t, err)
	assert.Equal(t, []externals.Entry{
		{Location: "https://scm/keep", Path: "keep"},
		{Location: "https://scm/a", Path: "libs/new"},
	}, store.Entries())
	require.Len(t, report.Changes, 1)
	assert.Equal(t, reconcile.ActionUpdated, report.Changes[0].Action)
	assert.Equal(t, "libs/old", report.Changes[0].PreviousPath)
	assert.Equal(t, "https://scm/a", report.Changes[0].PreviousLocation)
}

func TestReconcile_PathUniqueness(t *testing.T) {
	source := testutil.NewMockMetadataSource()
	var decls []types.Declaration
	for i := 0; i < 12; i++ {
		coord := fmt.Sprintf("g:lib%d:1.0", i)
		source.WithScm(coord, fmt.Sprintf("https://scm/lib%d", i))
		// paths repeat every four declarations
		decls = append(decls, testutil.Declare(coord, fmt.Sprintf("libs/%d", i%4)))
	}
	store := externals.NewStore(
		externals.Entry{Location: "https://scm/old0", Path: "libs/0"},
		externals.Entry{Location: "https://scm/other", Path: "other"},
	)

	_, err := newReconciler(source).Reconcile(context.Background(), store, decls)
	require.NoError(t, err)

	seenPaths := map[string]bool{}
	seenLocations := map[string]bool{}
	for _, e := range store.Entries() {
		assert.False(t, seenPaths[e.Path], "duplicate path %s", e.Path)
		assert.False(t, seenLocations[e.Location], "duplicate location %s", e.Location)
		seenPaths[e.Path] = true
		seenLocations[e.Location] = true
	}
	assert.Equal(t, 5, store.Len())
	assert.Equal(t, "https://scm/lib8", store.Find("libs/0").Location)
}

func TestReconcile_FailFast(t *testing.T) {
	source := testutil.NewMockMetadataSource().
		WithScm("g:a:1.0", "https://scm/a").
		WithoutScm("g:noscm:1.0")
	original := []externals.Entry{{Location: "https://scm/old", Path: "libs/a"}}

	tests := []struct {
		name     string
		decls    []types.Declaration
		wantCode errors.ErrorCode
	}{
		{
			name:     "no declarations",
			decls:    nil,
			wantCode: errors.ErrConfigMissing,
		},
		{
			name: "missing path after a valid declaration",
			decls: []types.Declaration{
				testutil.Declare("g:a:1.0", "libs/a"),
				testutil.Declare("g:a:1.0", ""),
			},
			wantCode: errors.ErrDeclarationInvalid,
		},
		{
			name: "missing dependency",
			decls: []types.Declaration{
				testutil.Declare("g:a:1.0", "libs/a"),
				{Path: "libs/b"},
			},
			wantCode: errors.ErrDeclarationInvalid,
		},
		{
			name: "scm metadata missing",
			decls: []types.Declaration{
				testutil.Declare("g:a:1.0", "libs/a"),
				testutil.Declare("g:noscm:1.0", "libs/noscm"),
			},
			wantCode: errors.ErrScmMetadataMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := externals.NewStore(original...)

			report, err := newReconciler(source).Reconcile(context.Background(), store, tt.decls)

			require.Error(t, err)
			assert.Nil(t, report)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Equal(t, original, store.Entries(), "store must be left unmodified")
		})
	}
}

func TestReconcile_StopsAtFirstFailure(t *testing.T) {
	source := testutil.NewMockMetadataSource().WithScm("g:a:1.0", "https://scm/a")

	_, err := newReconciler(source).Reconcile(context.Background(), externals.NewStore(), []types.Declaration{
		testutil.Declare("g:missing:1.0", "libs/missing"),
		testutil.Declare("g:a:1.0", "libs/a"),
	})

	require.Error(t, err)
	assert.Len(t, source.Lookups, 1)
}
