package config

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/svnext/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

type sampleFile struct {
	Scm       sampleScm        `toml:"scm" comment:"Repository whose svn:externals property is managed"`
	Build     sampleBuild      `toml:"build"`
	Svn       sampleSvn        `toml:"svn"`
	Maven     sampleMaven      `toml:"maven"`
	Externals []sampleExternal `toml:"externals" comment:"One entry per external; dependency is group:artifact:version[:type]"`
}

type sampleScm struct {
	URL string `toml:"url"`
}

type sampleBuild struct {
	Target string `toml:"target" comment:"Scratch directory; the checkout lives in <target>/checkout"`
}

type sampleSvn struct {
	Binary        string `toml:"binary"`
	CommitMessage string `toml:"commit_message"`
	Timeout       string `toml:"timeout" comment:"Per-command timeout, 0s disables it"`
}

type sampleMaven struct {
	Repository        string `toml:"repository" comment:"Local repository root, empty means ~/.m2/repository"`
	CacheSize         int    `toml:"cache_size"`
	TrimTrailingSlash bool   `toml:"trim_trailing_slash"`
}

type sampleExternal struct {
	Dependency string `toml:"dependency"`
	Path       string `toml:"path"`
}

// GenerateConfigContent renders a starter svnext.toml. With commented set,
// every value line is commented out so the file documents the defaults
// without overriding them.
func GenerateConfigContent(scmURL string, commented bool) (string, error) {
	defaults, err := Defaults()
	if err != nil {
		return "", err
	}

	if scmURL == "" {
		scmURL = "https://svn.example.com/repos/project/trunk"
	}
	sample := sampleFile{
		Scm:   sampleScm{URL: scmURL},
		Build: sampleBuild{Target: defaults.Build.Target},
		Svn: sampleSvn{
			Binary:        defaults.Svn.Binary,
			CommitMessage: defaults.Svn.CommitMessage,
			Timeout:       defaults.Svn.Timeout.String(),
		},
		Maven: sampleMaven{
			Repository:        defaults.Maven.Repository,
			CacheSize:         defaults.Maven.CacheSize,
			TrimTrailingSlash: defaults.Maven.TrimTrailingSlash,
		},
		Externals: []sampleExternal{
			{Dependency: "org.example:shared-lib:1.0.0", Path: "libs/shared"},
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(sample); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render sample config")
	}

	content := buf.String()
	if commented {
		content = commentOutConfigValues(content)
	}
	return content, nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Table headers stay so the commented file keeps its shape. Array
		// tables are commented too, an empty [[externals]] would declare one.
		if strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
