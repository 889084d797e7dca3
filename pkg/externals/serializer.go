package externals

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/svnext/pkg/errors"
)

// Parse reads "<location> <path>" records into a new store.
//
// Blank lines and lines starting with '#' are skipped. The location is the
// first whitespace-delimited field and the path is the rest of the line.
func Parse(r io.Reader) (*Store, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrExternalsParse, "failed to read externals")
	}
	return ParseLines(lines)
}

// ParseLines is Parse over already split lines, such as captured command
// output.
func ParseLines(lines []string) (*Store, error) {
	s := &Store{}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		location, path, ok := splitRecord(line)
		if !ok {
			return nil, errors.Newf(errors.ErrExternalsParse, "line %d: %q has no path", i+1, line).
				WithDetail("line", i+1)
		}
		s.Upsert(location, path)
	}
	return s, nil
}

func splitRecord(line string) (location, path string, ok bool) {
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return "", "", false
	}
	location = line[:idx]
	path = strings.TrimSpace(line[idx:])
	return location, path, path != ""
}

// Render writes every entry as "<location> <path>\n" in store order
func Render(w io.Writer, s *Store) error {
	for _, e := range s.entries {
		if _, err := io.WriteString(w, e.Location+" "+e.Path+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// String returns the rendered form of the store
func (s *Store) String() string {
	var b strings.Builder
	_ = Render(&b, s)
	return b.String()
}
