package testutil

import (
	"os"
	"strings"
	"testing"
)

// IsolateEnv points the state directory at a temporary directory and
// clears every other SVNEXT_* variable for the duration of the test, so
// neither the developer's environment nor the real log file leak in.
// It returns the state directory.
func IsolateEnv(t *testing.T) string {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "SVNEXT_") {
			t.Setenv(name, "")
			if err := os.Unsetenv(name); err != nil {
				t.Fatalf("failed to unset %s: %v", name, err)
			}
		}
	}
	stateDir := t.TempDir()
	t.Setenv("SVNEXT_STATE_DIR", stateDir)
	return stateDir
}
