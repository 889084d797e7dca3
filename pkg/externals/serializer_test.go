package externals

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	s := NewStore(Entry{Location: "u1", Path: "p1"}, Entry{Location: "u2", Path: "p2"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s))

	assert.Equal(t, "u1 p1\nu2 p2\n", buf.String())
	assert.Equal(t, "u1 p1\nu2 p2\n", s.String())
	assert.Equal(t, "", NewStore().String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "propget output with trailing blank line",
			input: "https://scm/a/trunk libs/a\nhttps://scm/b/trunk libs/b\n\n",
			want: []Entry{
				{Location: "https://scm/a/trunk", Path: "libs/a"},
				{Location: "https://scm/b/trunk", Path: "libs/b"},
			},
		},
		{
			name:  "empty property",
			input: "",
			want:  []Entry{},
		},
		{
			name:  "comments and surrounding whitespace",
			input: "# managed\n   https://scm/a   libs/a  \n",
			want:  []Entry{{Location: "https://scm/a", Path: "libs/a"}},
		},
		{
			name:  "tab separated",
			input: "https://scm/a\tlibs/a\n",
			want:  []Entry{{Location: "https://scm/a", Path: "libs/a"}},
		},
		{
			name:  "path with spaces keeps the rest of the line",
			input: "https://scm/a third party/a\n",
			want:  []Entry{{Location: "https://scm/a", Path: "third party/a"}},
		},
		{
			name:  "duplicate path collapses to the later record",
			input: "https://scm/old libs/a\nhttps://scm/new libs/a\n",
			want:  []Entry{{Location: "https://scm/new", Path: "libs/a"}},
		},
		{
			name:  "duplicate location collapses to the later record",
			input: "u1 p1\nu2 p2\nu1 p3\n",
			want: []Entry{
				{Location: "u1", Path: "p3"},
				{Location: "u2", Path: "p2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Entries())
		})
	}
}

func TestParse_MissingPath(t *testing.T) {
	_, err := ParseLines([]string{"https://scm/a libs/a", "https://scm/lonely"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExternalsParse))
	assert.Equal(t, 2, errors.GetErrorDetails(err)["line"])
}

func TestRoundTrip(t *testing.T) {
	stores := []*Store{
		NewStore(),
		NewStore(Entry{Location: "u1", Path: "p1"}),
		NewStore(
			Entry{Location: "https://scm/a/trunk", Path: "libs/a"},
			Entry{Location: "https://scm/b/tags/1.0", Path: "libs/b"},
			Entry{Location: "^/shared/c", Path: "vendor/c"},
		),
	}

	for i, s := range stores {
		t.Run(fmt.Sprintf("store_%d", i), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, s))

			parsed, err := Parse(&buf)
			require.NoError(t, err)
			assert.True(t, s.Equal(parsed), "round trip changed store: %v != %v", s.Entries(), parsed.Entries())
		})
	}
}
