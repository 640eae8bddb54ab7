package gradle

import (
	"fmt"
	"os"
	"regexp"
)

// distributionURLRegex matches the distributionUrl line of a wrapper
// properties file, capturing everything needed to rewrite the version.
var distributionURLRegex = regexp.MustCompile(
	`(?m)^distributionUrl=(?P<prefix>.*)gradle-(?P<version>[0-9.]+)-(?P<type>bin|all)\.zip(?P<cr>\r?)$`,
)

// ReplaceVersions rewrites every distributionUrl line whose version can be
// replaced by one of candidates. The first qualifying candidate in slice
// order wins. Lines with unparsable versions are left untouched.
func ReplaceVersions(candidates []Version, content string) string {
	return distributionURLRegex.ReplaceAllStringFunc(content, func(line string) string {
		m := distributionURLRegex.FindStringSubmatch(line)
		prefix := m[distributionURLRegex.SubexpIndex("prefix")]
		kind := m[distributionURLRegex.SubexpIndex("type")]
		cr := m[distributionURLRegex.SubexpIndex("cr")]

		current, err := ParseVersion(m[distributionURLRegex.SubexpIndex("version")])
		if err != nil {
			return line
		}

		for _, candidate := range candidates {
			if candidate.CanReplace(current) {
				return fmt.Sprintf("distributionUrl=%sgradle-%s-%s.zip%s", prefix, candidate, kind, cr)
			}
		}
		return line
	})
}

// UpdateResult describes the outcome of UpdateWrapperProperties.
type UpdateResult struct {
	Path    string
	Changed bool
}

// UpdateWrapperProperties reads the wrapper properties file at path,
// applies ReplaceVersions and writes the result back to the same path.
func UpdateWrapperProperties(path string, candidates []Version) (*UpdateResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening gradle wrapper properties file: %w", err)
	}

	updated := ReplaceVersions(candidates, string(content))

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return nil, fmt.Errorf("writing wrapper properties file: %w", err)
	}

	return &UpdateResult{Path: path, Changed: updated != string(content)}, nil
}
